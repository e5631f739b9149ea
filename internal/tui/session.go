package tui

import "sync/atomic"

var sessionLogin atomic.Value

func setSessionLogin(login string) {
	sessionLogin.Store(login)
}

func getSessionLogin() string {
	v, _ := sessionLogin.Load().(string)
	return v
}
