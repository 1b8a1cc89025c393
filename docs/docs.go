// Package docs registers the OpenAPI document with swag so echo-swagger can serve it.
package docs

import (
	"orders/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Orders Service",
	Description:      "Order lifecycle and access control.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
