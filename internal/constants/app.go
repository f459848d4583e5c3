package constants

const (
	APP_STOREFRONT_SERVICE = "storefront-service"
	APP_MAIN_STOREFRONT    = "main storefront"
)
