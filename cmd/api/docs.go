// Package main provides the catalogue-service HTTP server
//
// @title Catalogue Service API
// @version 1.0
// @description Pass-through catalogue API for movie and TV contents enriched from TMDB.
// @description
// @description All /api/v1 endpoints require the pre-shared API key in the
// @description Authorization header. List endpoints use opaque cursor pagination
// @description via the pageSize and after query parameters.
//
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main
