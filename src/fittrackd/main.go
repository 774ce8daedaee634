// fittrackd is the Fit-Track workout tracking API server.
//
//	@title			Fit-Track API
//	@version		1.0
//	@description	REST API for user accounts, an exercise catalog, and per-user training logs.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import "github.com/da-maltsev/fit-track/src/fittrackd/core"

func main() {
	core.Execute()
}
