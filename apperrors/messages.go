package apperrors

const (
	USER_NOT_FOUND             = "User not found"
	DOCTOR_NOT_FOUND           = "Doctor not found"
	BOOKING_NOT_FOUND          = "Booking not found."
	INVALID_TOKEN              = "Invalid token"
	STALE_TOKEN                = "Token is invalid or expired"
	NO_TOKEN_PROVIDED          = "No token provided"
	ACCESS_DENIED              = "Access denied"
	ADMIN_ONLY                 = "Access denied. Admin only."
	USER_MISMATCH              = "Access denied. User mismatch."
	ADMIN_OR_USER_MISMATCH     = "Access denied. Admin or user mismatch."
	INVALID_OTP                = "Invalid OTP"
	OTP_EXPIRED                = "OTP has expired"
	OTP_NOT_VERIFIED           = "OTP verification required before resetting password"
	DAY_UNAVAILABLE            = "No availability for the selected day"
	SLOT_TAKEN                 = "Time slot is not available"
	USER_ALREADY_REGISTERED    = "User already registered"
	DOCTOR_ALREADY_EXISTS      = "Doctor with this email already exists"
	EMAIL_ALREADY_IN_USE       = "Email already in use"
	INVALID_CREDENTIALS        = "Invalid email or password"
	OLD_PASSWORD_INCORRECT     = "Old password is incorrect"
	NO_PHOTO_TO_REMOVE         = "No photo available to remove."
	PHOTO_REMOVAL_FAILED       = "Failed to remove photo from Cloudinary."
	IMAGE_UPLOAD_FAILED        = "Image upload failed!"
	NO_FILE_UPLOADED           = "No file uploaded!"
	OTP_MAIL_FAILED            = "Something went wrong"
	INVALID_SPECIALTY          = "Invalid specialty parameter"
	NO_DOCTORS_FOR_SPECIALTY   = "No doctors found with this specialty"
	NO_BOOKINGS_FOUND          = "No bookings found."
	NO_BOOKINGS_FOR_USER       = "No bookings found for this user."
	NO_BOOKINGS_FOR_DOCTOR     = "No bookings found for this doctor."
	INVALID_ID                 = "Invalid id"
	TOO_MANY_LOGIN_ATTEMPTS    = "Too many login attempts from this IP, please try again later."
	SOMETHING_WENT_WRONG       = "Something went wrong"
	DAY_AND_TIME_REQUIRED      = "Day and time are required"
	STATUS_AND_PAYMENT_MISSING = "Status and payment status are required."
	PASSWORDS_DO_NOT_MATCH     = "New password and confirm password do not match"
)

var (
	ErrUserNotFound      = New(KindNotFound, USER_NOT_FOUND)
	ErrDoctorNotFound    = New(KindNotFound, DOCTOR_NOT_FOUND)
	ErrBookingNotFound   = New(KindNotFound, BOOKING_NOT_FOUND)
	ErrInvalidToken      = New(KindUnauthenticated, INVALID_TOKEN)
	ErrStaleToken        = New(KindUnauthenticated, STALE_TOKEN)
	ErrTokenUserNotFound = New(KindUnauthenticated, USER_NOT_FOUND)
	ErrUnauthenticated   = New(KindUnauthenticated, NO_TOKEN_PROVIDED)
	ErrForbidden         = New(KindForbidden, ACCESS_DENIED)
	ErrInvalidOTP        = New(KindValidation, INVALID_OTP)
	ErrOTPExpired        = New(KindValidation, OTP_EXPIRED)
	ErrOTPNotVerified    = New(KindValidation, OTP_NOT_VERIFIED)
	ErrDayUnavailable    = New(KindValidation, DAY_UNAVAILABLE)
	ErrSlotTaken         = New(KindValidation, SLOT_TAKEN)
	ErrEmailTaken        = New(KindConflict, USER_ALREADY_REGISTERED)
	ErrDoctorEmailTaken  = New(KindConflict, DOCTOR_ALREADY_EXISTS)
	ErrEmailInUse        = New(KindConflict, EMAIL_ALREADY_IN_USE)
	ErrInvalidLogin      = New(KindValidation, INVALID_CREDENTIALS)
	ErrInvalidID         = New(KindValidation, INVALID_ID)
	ErrTooManyLogins     = New(KindTooManyRequests, TOO_MANY_LOGIN_ATTEMPTS)
)
