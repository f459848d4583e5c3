package constants

const (
	KEY_APP_NAME       = "app"
	KEY_REQUEST_ID     = "requestId"
	KEY_PROCESS        = "process"
	KEY_TAG            = "tag"
	KEY_CONFIG         = "config"
	KEY_EMAIL          = "email"
	KEY_REQUEST        = "request"
	KEY_HEADER         = "header"
	KEY_BODY           = "body"
	KEY_REQUEST_HOST   = "host"
	KEY_REQUEST_IP     = "requesterIP"
	KEY_REQUEST_METHOD = "requestMethod"
	KEY_REQUEST_URI    = "requestURI"
	KEY_REQUEST_URL    = "requestURL"
	KEY_TRACE_ID       = "traceId"
	KEY_SPAN_ID        = "spanId"
	KEY_STORAGE_KEY    = "storageKey"
	KEY_PRODUCT        = "product"
	KEY_PRODUCT_ID     = "productId"
	KEY_QUANTITY       = "quantity"
	KEY_CART_ITEMS     = "cartItems"
	KEY_TOTAL_ITEMS    = "totalItems"
	KEY_TOTAL_PRICE    = "totalPrice"
	KEY_FEED_URL       = "feedUrl"
	KEY_SHEET_ID       = "sheetId"
	KEY_PRODUCT_COUNT  = "productCount"
	KEY_USER_ID        = "userId"
	KEY_WEBHOOK_URL    = "webhookUrl"
)
