package main

import "socketBoard/cmd/app"

func main() {
	app.GetApp().LetsGo()
}
