// Package docs swagger spec REST API, mengikuti anotasi swag di pkg/server/rest/handlers.go.
// Update manual kalau anotasi handler berubah.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "lintang birda saputra"
        },
        "license": {
            "name": "GNU Affero General Public License v3.0",
            "url": "https://www.gnu.org/licenses/gpl-3.0.en.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/projections/canvas-to-geo": {
            "post": {
                "description": "inverse proyeksi pixel canvas ke koordinat geografis. geo_bound dan canvas_bound optional, default dari config.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "inverse proyeksi pixel canvas ke koordinat geografis.",
                "parameters": [
                    {
                        "description": "request body canvas to geo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.CanvasToGeoRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.CanvasToGeoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/projections/distort": {
            "post": {
                "description": "koreksi vektor (misal angin) terhadap distorsi proyeksi di titik canvas. Tiap titik di inverse ke lat/lng, lalu vektornya dikalikan jacobian lokal proyeksi.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "koreksi vektor (misal angin) terhadap distorsi proyeksi di titik canvas.",
                "parameters": [
                    {
                        "description": "request body distort",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.DistortRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.DistortResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/projections/geo-to-canvas": {
            "post": {
                "description": "proyeksi koordinat geografis ke pixel canvas (mercator). geo_bound dan canvas_bound optional, default dari config.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "proyeksi koordinat geografis ke pixel canvas (mercator).",
                "parameters": [
                    {
                        "description": "request body geo to canvas",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.GeoToCanvasRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.GeoToCanvasResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/projections/tensor": {
            "post": {
                "description": "tensor distorsi proyeksi di satu koordinat. Default finite difference, analytic=true pakai turunan closed form mercator.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "tensor distorsi proyeksi di satu koordinat.",
                "parameters": [
                    {
                        "description": "request body tensor",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.TensorRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.TensorResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        }
    },
    "definitions": {
        "rest.CanvasBoundReq": {
            "description": "rectangle pixel tempat geo bound diproyeksikan",
            "type": "object",
            "properties": {
                "x_max": {"type": "number"},
                "x_min": {"type": "number"},
                "y_max": {"type": "number"},
                "y_min": {"type": "number"}
            }
        },
        "rest.CanvasToGeoRequest": {
            "description": "request body untuk inverse proyeksi pixel canvas ke koordinat",
            "type": "object",
            "required": ["points"],
            "properties": {
                "canvas_bound": {"$ref": "#/definitions/rest.CanvasBoundReq"},
                "geo_bound": {"$ref": "#/definitions/rest.GeoBoundReq"},
                "points": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/rest.Point"}},
                "precision": {"type": "integer", "maximum": 15}
            }
        },
        "rest.CanvasToGeoResponse": {
            "description": "response body inverse proyeksi pixel canvas ke koordinat",
            "type": "object",
            "properties": {
                "coordinates": {"type": "array", "items": {"$ref": "#/definitions/rest.Coord"}}
            }
        },
        "rest.Coord": {
            "description": "model untuk koordinat",
            "type": "object",
            "properties": {
                "lat": {"type": "number", "exclusiveMaximum": true, "exclusiveMinimum": true, "maximum": 90, "minimum": -90},
                "lng": {"type": "number"}
            }
        },
        "rest.DistortPoint": {
            "description": "titik pixel canvas + vektor (u ke timur, v ke utara)",
            "type": "object",
            "properties": {
                "u": {"type": "number"},
                "v": {"type": "number"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "rest.DistortRequest": {
            "description": "request body untuk koreksi distorsi vektor di titik-titik canvas",
            "type": "object",
            "required": ["points"],
            "properties": {
                "canvas_bound": {"$ref": "#/definitions/rest.CanvasBoundReq"},
                "geo_bound": {"$ref": "#/definitions/rest.GeoBoundReq"},
                "points": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/rest.DistortPoint"}},
                "precision": {"type": "integer", "maximum": 15}
            }
        },
        "rest.DistortResponse": {
            "description": "response body vektor yang sudah dikoreksi, urutan sama dengan request",
            "type": "object",
            "properties": {
                "vectors": {"type": "array", "items": {"$ref": "#/definitions/rest.DistortPoint"}}
            }
        },
        "rest.ErrResponse": {
            "description": "model untuk error response",
            "type": "object",
            "properties": {
                "code": {"description": "application-specific error code", "type": "integer"},
                "error": {"description": "application-level error message, for debugging", "type": "string"},
                "status": {"description": "user-level status message", "type": "string"},
                "validation": {"type": "array", "items": {"type": "string"}}
            }
        },
        "rest.GeoBoundReq": {
            "description": "window geografis (derajat) yang dipetakan ke canvas",
            "type": "object",
            "properties": {
                "east": {"type": "number", "maximum": 360, "minimum": -360},
                "north": {"type": "number", "exclusiveMaximum": true, "exclusiveMinimum": true, "maximum": 90, "minimum": -90},
                "south": {"type": "number", "exclusiveMaximum": true, "exclusiveMinimum": true, "maximum": 90, "minimum": -90},
                "west": {"type": "number", "maximum": 360, "minimum": -360}
            }
        },
        "rest.GeoToCanvasRequest": {
            "description": "request body untuk proyeksi koordinat ke pixel canvas",
            "type": "object",
            "required": ["coordinates"],
            "properties": {
                "canvas_bound": {"$ref": "#/definitions/rest.CanvasBoundReq"},
                "coordinates": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/rest.Coord"}},
                "geo_bound": {"$ref": "#/definitions/rest.GeoBoundReq"},
                "precision": {"type": "integer", "maximum": 15}
            }
        },
        "rest.GeoToCanvasResponse": {
            "description": "response body proyeksi koordinat ke pixel canvas",
            "type": "object",
            "properties": {
                "points": {"type": "array", "items": {"$ref": "#/definitions/rest.Point"}}
            }
        },
        "rest.Point": {
            "description": "model untuk titik pixel canvas",
            "type": "object",
            "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "rest.TensorRequest": {
            "description": "request body untuk tensor distorsi di satu koordinat",
            "type": "object",
            "properties": {
                "analytic": {"type": "boolean"},
                "canvas_bound": {"$ref": "#/definitions/rest.CanvasBoundReq"},
                "geo_bound": {"$ref": "#/definitions/rest.GeoBoundReq"},
                "lat": {"type": "number", "exclusiveMaximum": true, "exclusiveMinimum": true, "maximum": 90, "minimum": -90},
                "lng": {"type": "number"},
                "precision": {"type": "integer", "maximum": 15}
            }
        },
        "rest.TensorResponse": {
            "description": "tensor [dx/dlng, dy/dlng, dx/dlat, dy/dlat] (turunan longitude sudah dibagi cos lat)",
            "type": "object",
            "properties": {
                "method": {"type": "string"},
                "point": {"$ref": "#/definitions/rest.Point"},
                "tensor": {"type": "array", "items": {"type": "number"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "windcanvas lintangbs API",
	Description:      "projection service: mercator geo <-> canvas mapping and projection-distortion correction for wind vectors",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
