// @title           jobport API
// @version         1.0
// @description     API бэкенда платформы поиска работы.
// @host            localhost:4000
// @BasePath        /

package main

import "jobport_backend/internal/app"

func main() {
	app.Run()
}
