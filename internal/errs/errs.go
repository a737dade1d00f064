package errs

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserAlreadyExists = errors.New("user already exists")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrAddressNotFound = errors.New("address not found")
var ErrPlaceNotFound = errors.New("place not found")
var ErrPlanNotFound = errors.New("plan not found")
var ErrOrderNotFound = errors.New("event order not found")
var ErrCardNotFound = errors.New("card not found")
var ErrCreditPackNotFound = errors.New("credit pack not found")
var ErrPaymentMethodNotFound = errors.New("payment method not found")
var ErrCreditOrderNotFound = errors.New("credit order not found")

var ErrInvalidRatingScore = errors.New("rating score must be between 1 and 5")
var ErrAmbiguousRatingTarget = errors.New("rating must target exactly one user or place")

var ErrEmptyWeekDays = errors.New("plan must have at least one week day")
var ErrPlanPlaceMismatch = errors.New("selected plan does not belong to the place")
var ErrPlanTypeMismatch = errors.New("plan type differs from the order's plan type")
var ErrDailyDaysNotAllowed = errors.New("selected dates must fall on the plan's week days")
var ErrPackageDaysMismatch = errors.New("selected dates must cover exactly the plan's week days")

var ErrOrderNotOpen = errors.New("event order is no longer open")
var ErrOrderNotCancelable = errors.New("event order can no longer be canceled")
var ErrInsufficientCredit = errors.New("not enough credits")

var ErrNotOwner = errors.New("only the place owner can do this")
var ErrNotOrderingUser = errors.New("only the ordering user can do this")
var ErrOwnPlaceOrder = errors.New("owner cannot book their own place")

var ErrNoGatewayCustomer = errors.New("user has no gateway customer account")
var ErrUnknownGateway = errors.New("unknown payment gateway")
var ErrUnknownWebhook = errors.New("webhook id is not registered")
var ErrCreditOrderNotPending = errors.New("credit order is not pending")
