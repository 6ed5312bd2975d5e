// @title           EkrafMate API
// @version         1.0
// @description     REST API for the EkrafMate creative talent marketplace.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "ekrafmate_backend/internal/app"

func main() {
	app.Run()
}
