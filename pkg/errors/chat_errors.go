package errors

var (
	// Domain errors used by usecases and repositories.
	ErrUsernameTaken      = AlreadyExists("username is already taken")
	ErrEmailTaken         = AlreadyExists("email is already registered")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidUsername    = InvalidArg("username must be 3-30 characters")
	ErrInvalidCredentials = Unauthorized("invalid username or password")
	ErrInvalidToken       = Unauthorized("invalid or expired token")

	ErrChannelNotFound    = NotFound("channel not found")
	ErrNotMember          = Forbidden("not a member of this channel")
	ErrAlreadyMember      = AlreadyExists("Already a member of this channel")
	ErrMessageNotFound    = NotFound("message not found")
	ErrReplyTargetMissing = NotFound("reply target message not found in this channel")

	// Edit permission deliberately does not distinguish a missing message
	// from someone else's message, so non-authors cannot probe existence.
	ErrMessageNotEditable  = Forbidden("message not found or no permission")
	ErrMessageNotDeletable = Forbidden("no permission to delete this message")

	ErrEmptyContent       = InvalidArg("message content cannot be empty")
	ErrInvalidMessageType = InvalidArg("message type must be text, image or link")
	ErrPrivateChatAccess  = Forbidden("private chat not found or no access")
	ErrSelfChat           = InvalidArg("cannot open a private chat with yourself")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrLoginFailed(cause error) error {
	return Wrap(CodeUnauthenticated, "login failed", cause)
}
