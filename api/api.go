// Package api holds the OpenAPI document of the orders service.
// internal/generated/servers is generated from openapi.json.
package api

import _ "embed"

// OpenAPI is the raw OpenAPI 3 document.
//
//go:embed openapi.json
var OpenAPI []byte
