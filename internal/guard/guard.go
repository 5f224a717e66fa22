// Package guard decides where page navigation lands based on nothing but
// the target path and whether a session token is present. It never
// validates the token - an expired-but-present token passes and fails on
// the first backend call instead.
package guard

import (
	"net/url"
	"strings"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// the outcome of a navigation check
type Decision struct {
	Allow    bool
	Location string // redirect target when Allow is false
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(location string) Decision {
	return Decision{Location: location}
}

// Decide is a pure function of (target path, token presence, redirect
// query param). redirectParam is only consulted when leaving /login.
func Decide(path string, hasToken bool, redirectParam string) Decision {
	switch {
	case path == "/":
		if !hasToken {
			return redirect(loginPath)
		}

		return redirect(dashboardPath)

	case isDashboard(path):
		if !hasToken {
			target := url.Values{}
			target.Set("redirect", path)
			target.Set("error", "unauthorized")

			return redirect(loginPath + "?" + target.Encode())
		}

		return allow()

	case path == loginPath:
		if hasToken {
			if isDashboard(redirectParam) {
				return redirect(redirectParam)
			}

			return redirect(dashboardPath)
		}

		return allow()
	}

	return allow()
}

// only /dashboard itself and paths below it count; /dashboardfoo does not
func isDashboard(path string) bool {
	return path == dashboardPath || strings.HasPrefix(path, dashboardPath+"/")
}
