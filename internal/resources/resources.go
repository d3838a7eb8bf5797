package resources

// Resource URIs
const (
	ConfigURI        = "config://app"
	EchoScheme       = "echo://"
	EchoURITemplate  = EchoScheme + "{message}"
	echoMessageParam = "message"
)

const (
	textMIMEType = "text/plain"
	echoPrefix   = "Resource echo: "
)
