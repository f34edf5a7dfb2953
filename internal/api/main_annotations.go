// @title           Brainly API
// @version         1.0
// @description     Personal bookmark vault. Sign in to obtain a bearer token.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     The signed token returned by /signin, optionally prefixed with "Bearer ".
package api
