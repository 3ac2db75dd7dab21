package result

// Code classifies a failure. The string values are shared with every service
// on the bus and must not change.
type Code string

// NoCode marks a failure without classification.
const NoCode Code = ""

// General codes.
const (
	CodeValidationError      Code = "VALIDATION_ERROR"
	CodeNotFound             Code = "NOT_FOUND"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeForbidden            Code = "FORBIDDEN"
	CodeInternalError        Code = "INTERNAL_ERROR"
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
)

// Order codes.
const (
	CodeOrderNotFound                Code = "ORDER_NOT_FOUND"
	CodeOrderInvalidStatus           Code = "ORDER_INVALID_STATUS"
	CodeOrderStatusTransitionInvalid Code = "ORDER_STATUS_TRANSITION_INVALID"
	CodeOrderAlreadyCancelled        Code = "ORDER_ALREADY_CANCELLED"
	CodeOrderAlreadyCompleted        Code = "ORDER_ALREADY_COMPLETED"
	CodeOrderItemsRequired           Code = "ORDER_ITEMS_REQUIRED"
	CodeOrderInvalidCustomer         Code = "ORDER_INVALID_CUSTOMER"
	CodeUnmappedRoutingDestination   Code = "UNMAPPED_ROUTING_DESTINATION"
)

// Product codes.
const (
	CodeProductNotFound   Code = "PRODUCT_NOT_FOUND"
	CodeProductOutOfStock Code = "PRODUCT_OUT_OF_STOCK"
	CodeProductInactive   Code = "PRODUCT_INACTIVE"
)

// Customer codes.
const (
	CodeCustomerNotFound Code = "CUSTOMER_NOT_FOUND"
	CodeCustomerInactive Code = "CUSTOMER_INACTIVE"
)

// Payment codes.
const (
	CodePaymentFailed           Code = "PAYMENT_FAILED"
	CodePaymentMethodInvalid    Code = "PAYMENT_METHOD_INVALID"
	CodePaymentAlreadyProcessed Code = "PAYMENT_ALREADY_PROCESSED"
)

func (c Code) String() string {
	return string(c)
}
