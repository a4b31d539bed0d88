// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError = "error.internal"
	KeyRateLimited   = "error.rate_limited"

	// Clients
	KeyClientNotFound   = "client.not_found"
	KeyClientEmailTaken = "client.email_taken"
	KeyClientHasOrders  = "client.has_orders"

	// Products
	KeyProductNotFound  = "product.not_found"
	KeyProductNameTaken = "product.name_taken"
	KeyProductInUse     = "product.in_use"
	KeyProductMissing   = "product.missing"

	// Orders
	KeyOrderNotFound         = "order.not_found"
	KeyOrderClientMissing    = "order.client_missing"
	KeyOrderEmpty            = "order.empty"
	KeyOrderLastItem         = "order.last_item"
	KeyOrderDiscountNegative = "order.discount_negative"
	KeyOrderDiscountTooHigh  = "order.discount_too_high"
	KeyOrderItemNotFound     = "order.item_not_found"
	KeyOrderDuplicate        = "order.duplicate"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
	KeyValidationEmail    = "validation.invalid_email"
	KeyValidationMin      = "validation.min"
	KeyValidationMax      = "validation.max"
	KeyValidationNumeric  = "validation.numeric"
	KeyValidationStatus   = "validation.status"

	// File Upload
	KeyFileInvalidType = "file.invalid_type"
	KeyFileTooLarge    = "file.too_large"
	KeyFileCorrupted   = "file.corrupted"
	KeyFileMissing     = "file.missing"

	// Client side notifications
	KeyUIItemAdded          = "ui.item_added"
	KeyUIItemUpdated        = "ui.item_updated"
	KeyUIItemRemoved        = "ui.item_removed"
	KeyUIConfirmRemoveItem  = "ui.confirm_remove_item"
	KeyUIConfirmCancelOrder = "ui.confirm_cancel_order"
	KeyUIOrderCancelled     = "ui.order_cancelled"
	KeyUIArtUploaded        = "ui.art_uploaded"
	KeyUIArtSelected        = "ui.art_selected"
	KeyUIFileInvalidType    = "ui.file_invalid_type"
	KeyUIFileTooLarge       = "ui.file_too_large"
	KeyUIOrderEmpty         = "ui.order_empty"
	KeyUIDiscountTooHigh    = "ui.discount_too_high"
	KeyUIClientRequired     = "ui.client_required"
	KeyUIInvalidNumber      = "ui.invalid_number"
	KeyUIOrderCreated       = "ui.order_created"
	KeyUIOrderSaved         = "ui.order_saved"
	KeyUIOrderDeleted       = "ui.order_deleted"
	KeyUIUploadFailed       = "ui.upload_failed"
	KeyUIClientSaved        = "ui.client_saved"
	KeyUIClientDeleted      = "ui.client_deleted"
	KeyUIProductSaved       = "ui.product_saved"
	KeyUIProductDeleted     = "ui.product_deleted"
	KeyUIUnexpectedError    = "ui.unexpected_error"
	KeyUITotalNotPositive   = "ui.total_not_positive"
	KeyUIProductRequired    = "ui.product_required"
	KeyUIQuantityInvalid    = "ui.quantity_invalid"
	KeyUIPriceNegative      = "ui.price_negative"
	KeyUIItemNotInOrder     = "ui.item_not_in_order"
	KeyUIOrderSubmitted     = "ui.order_submitted"
)
