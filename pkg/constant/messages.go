package constant

// User-facing messages returned by the users API.
const (
	MsgValidationError = "Validation error"

	MsgRegisterSuccess = "Register successful"
	MsgLoginSuccess    = "Login successful"
	MsgLogoutSuccess   = "Logout successful"
	MsgRefreshSuccess  = "Refresh token successful"

	MsgUserNotFound         = "User not found"
	MsgEmailExists          = "Email already exists"
	MsgUsernameExists       = "Username already exists"
	MsgPasswordIncorrect    = "Incorrect password"
	MsgOldPasswordIncorrect = "Old password is incorrect"

	MsgAccessTokenRequired        = "Access token is required"
	MsgRefreshTokenRequired       = "Refresh token is required"
	MsgEmailVerifyTokenRequired   = "Email verify token is required"
	MsgForgotPasswordTokenReqd    = "Forgot password token is required"
	MsgForgotPasswordTokenInvalid = "Forgot password token is invalid"
	MsgUsedOrNonexistentRefresh   = "Used refresh token or not exists"

	MsgUserNotVerified      = "User is not verified"
	MsgEmailAlreadyVerified = "Email is already verified before"
	MsgEmailVerifySuccess   = "Email verified successfully"
	MsgResendVerifySuccess  = "Resend verify email successfully"

	MsgCheckEmailToResetPassword    = "Please check your email to reset your password"
	MsgVerifyForgotPasswordSuccess  = "Verify forgot password successfully"
	MsgResetPasswordSuccess         = "Reset password successfully"
	MsgChangePasswordSuccess        = "Change password successfully"

	MsgGetMeSuccess    = "Get my profile successfully"
	MsgUpdateMeSuccess = "Update my profile successfully"

	MsgFollowSuccess     = "Followed successfully"
	MsgUnfollowSuccess   = "Unfollowed successfully"
	MsgAlreadyFollowed   = "Already followed this user"
	MsgCannotFollowSelf  = "Cannot follow yourself"
	MsgFollowedNotFound  = "Followed user not found"
)
