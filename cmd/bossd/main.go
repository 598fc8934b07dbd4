/*
Command bossd runs a web server that dispatches every request
through a pattern-matched handler table before routing it.

By default, each request is logged once and answered with 404 Not Found.
Set ROUTES_FILE to describe the table in YAML; cf. [ranger.LoadRoutes].
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/xy-planning-network/boss/http/resp"
	"github.com/xy-planning-network/boss/http/router"
	"github.com/xy-planning-network/boss/ranger"
)

func main() {
	rng, err := ranger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rng.Handle(router.Route{
		Path:    "/healthz",
		Method:  http.MethodGet,
		Handler: resp.Json(http.StatusOK, map[string]string{"status": "ok"}),
	})

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Fatal(err.Error(), nil)
	}
}
