// Package directus is a thin REST client for the Directus instance that
// persists community members. It covers exactly the operations the signup
// service needs: creating members, checking for duplicates, and password
// login. Infrastructure failures surface as sentinel errors so callers
// can distinguish "CMS down" from "bad input" without parsing messages.
package directus
