// Package docs registers the OpenAPI document served at /swagger/. It mirrors
// the swag annotations on the controllers; the router tests fail when a route
// and its documented path disagree.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "home"
                ],
                "summary": "Landing page",
                "description": "The most recently listed artists and venues, newest first.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controllers.HomeResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/genres": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "List genres",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/domain.Genre"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/venues": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "List venues by area",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/domain.VenueArea"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/venues/search": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Search venues",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Search term",
                        "name": "search",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.SearchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.SearchResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/venues/create": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Empty venue form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.VenueForm"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Create a venue",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Venue form",
                        "name": "venue",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.VenueForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data.venue contains the created venue",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: unknown_genre",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    }
                }
            }
        },
        "/venues/{venueID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Get a venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "venueID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.VenueDetail"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Delete a venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "venueID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data.redirect points at the landing page",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/venues/{venueID}/edit": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Prefilled venue form",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "venueID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.VenueForm"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Update a venue",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "venueID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Venue form",
                        "name": "venue",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.VenueForm"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data.redirect points at the venue page",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: unknown_genre",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    }
                }
            }
        },
        "/artists": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "List artists",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/domain.ListingItem"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/artists/search": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Search artists",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Search term",
                        "name": "search",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.SearchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.SearchResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/artists/create": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Empty artist form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.ArtistForm"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Create an artist",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Artist form",
                        "name": "artist",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.ArtistForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data.artist contains the created artist",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: unknown_genre",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    }
                }
            }
        },
        "/artists/{artistID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Get an artist",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "artistID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.ArtistDetail"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Delete an artist",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "artistID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data.redirect points at the landing page",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/artists/{artistID}/edit": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Prefilled artist form",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "artistID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.ArtistForm"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Update an artist",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "artistID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Artist form",
                        "name": "artist",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.ArtistForm"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data.redirect points at the artist page",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: unknown_genre",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    }
                }
            }
        },
        "/artists/{artistID}/availability/create": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "availability"
                ],
                "summary": "Empty availability form",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "artistID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controllers.AvailabilityFormResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "availability"
                ],
                "summary": "Declare an availability window",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "artistID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Availability window",
                        "name": "availability",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.AvailabilityForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data.availability contains the stored window",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: parse_error, invalid_order, colliding or not_found",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    }
                }
            }
        },
        "/shows": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shows"
                ],
                "summary": "List shows",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/domain.ShowView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/shows/create": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shows"
                ],
                "summary": "Empty show form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/helpers.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.ShowForm"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "shows"
                ],
                "summary": "Book a show",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Show booking",
                        "name": "show",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.ShowForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data.show contains the booked show",
                        "schema": {
                            "$ref": "#/definitions/controllers.SubmitSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: parse_error, invalid_order, outside_availability, colliding or not_found",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.FormErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.AvailabilityFormResponse": {
            "type": "object",
            "properties": {
                "artist_id": {
                    "type": "integer"
                },
                "form": {
                    "$ref": "#/definitions/domain.AvailabilityForm"
                }
            }
        },
        "controllers.FormErrorResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/helpers.FormEcho"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "controllers.HomeResponse": {
            "type": "object",
            "properties": {
                "artists": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ListingItem"
                    }
                },
                "venues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ListingItem"
                    }
                }
            }
        },
        "controllers.SearchRequest": {
            "type": "object",
            "properties": {
                "search_term": {
                    "type": "string"
                }
            }
        },
        "controllers.SubmitResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "redirect": {
                    "type": "string"
                },
                "venue": {
                    "$ref": "#/definitions/domain.Venue"
                },
                "artist": {
                    "$ref": "#/definitions/domain.Artist"
                },
                "show": {
                    "$ref": "#/definitions/domain.Show"
                },
                "availability": {
                    "$ref": "#/definitions/domain.Availability"
                }
            }
        },
        "controllers.SubmitSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.SubmitResponse"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "domain.Artist": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "website_link": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "seeking_venue": {
                    "type": "boolean"
                }
            }
        },
        "domain.ArtistDetail": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "seeking_venue": {
                    "type": "boolean"
                },
                "seeking_description": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "past_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ArtistShow"
                    }
                },
                "upcoming_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ArtistShow"
                    }
                },
                "availability_list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AvailabilityWindow"
                    }
                },
                "past_shows_count": {
                    "type": "integer"
                },
                "upcoming_shows_count": {
                    "type": "integer"
                }
            }
        },
        "domain.ArtistForm": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "website_link": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "seeking_venue": {
                    "type": "boolean"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.ArtistShow": {
            "type": "object",
            "properties": {
                "venue_id": {
                    "type": "integer"
                },
                "venue_name": {
                    "type": "string"
                },
                "venue_image_link": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "domain.Availability": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "artist_id": {
                    "type": "integer"
                },
                "start_at": {
                    "type": "string"
                },
                "end_at": {
                    "type": "string"
                }
            }
        },
        "domain.AvailabilityForm": {
            "type": "object",
            "properties": {
                "start_at": {
                    "type": "string"
                },
                "end_at": {
                    "type": "string"
                }
            }
        },
        "domain.AvailabilityWindow": {
            "type": "object",
            "properties": {
                "start_at": {
                    "type": "string"
                },
                "end_at": {
                    "type": "string"
                }
            }
        },
        "domain.Genre": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.ListingItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "num_upcoming_shows": {
                    "type": "integer"
                }
            }
        },
        "domain.SearchResult": {
            "type": "object",
            "properties": {
                "search_term": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ListingItem"
                    }
                }
            }
        },
        "domain.Show": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "artist_id": {
                    "type": "integer"
                },
                "venue_id": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "string"
                },
                "end_time": {
                    "type": "string"
                }
            }
        },
        "domain.ShowForm": {
            "type": "object",
            "properties": {
                "artist_id": {
                    "type": "string"
                },
                "venue_id": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "end_time": {
                    "type": "string"
                }
            }
        },
        "domain.ShowView": {
            "type": "object",
            "properties": {
                "venue_id": {
                    "type": "integer"
                },
                "venue_name": {
                    "type": "string"
                },
                "artist_id": {
                    "type": "integer"
                },
                "artist_name": {
                    "type": "string"
                },
                "artist_image_link": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "end_time": {
                    "type": "string"
                }
            }
        },
        "domain.Venue": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "website_link": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "seeking_talent": {
                    "type": "boolean"
                }
            }
        },
        "domain.VenueArea": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "venues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ListingItem"
                    }
                }
            }
        },
        "domain.VenueDetail": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "seeking_talent": {
                    "type": "boolean"
                },
                "seeking_description": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "past_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.VenueShow"
                    }
                },
                "upcoming_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.VenueShow"
                    }
                },
                "past_shows_count": {
                    "type": "integer"
                },
                "upcoming_shows_count": {
                    "type": "integer"
                }
            }
        },
        "domain.VenueForm": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "website_link": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "seeking_talent": {
                    "type": "boolean"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.VenueShow": {
            "type": "object",
            "properties": {
                "artist_id": {
                    "type": "integer"
                },
                "artist_name": {
                    "type": "string"
                },
                "artist_image_link": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "helpers.FormEcho": {
            "type": "object",
            "properties": {
                "form": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fyyur API",
	Description:      "Venue and artist listings with show booking against artist availability.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
