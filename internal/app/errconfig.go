package app

import "net/http"

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get404() errCtx {
	return errCtx{
		Code:  http.StatusNotFound,
		Title: "Not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get405() errCtx {
	return errCtx{
		Code:  http.StatusMethodNotAllowed,
		Title: "Method not allowed",
		Msg:   "This page can only be viewed, not submitted to.",
	}
}

func get429() errCtx {
	return errCtx{
		Code:  http.StatusTooManyRequests,
		Title: "Too many requests",
		Msg:   "Slow down a little and try again in a moment.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  http.StatusInternalServerError,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}
