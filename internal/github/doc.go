// Package github implements the "sign up with GitHub" flow. It is
// profile enrichment, not account management: a successful authorization
// yields the member's GitHub login, name, email, and avatar so the signup
// form can be prefilled. State tokens protect the callback against CSRF
// and are single-use.
package github
