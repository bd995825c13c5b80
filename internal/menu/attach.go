//go:build darwin || windows || linux

package menu

import (
	"github.com/wailsapp/wails/v3/pkg/application"
)

// Attach builds the native application menu from the command set and
// wires every item to the router. Only compiled on platforms with a
// native menu bar.
func (r *Router) Attach(app *application.App) {
	menu := app.NewMenu()
	view := menu.AddSubmenu("View")
	for _, cmd := range Commands() {
		id := cmd.ID
		view.Add(cmd.Label).OnClick(func(ctx *application.Context) {
			r.Dispatch(id)
		})
		switch id {
		case "about", "set_layout_grid":
			view.AddSeparator()
		}
	}
	app.Menu.SetApplicationMenu(menu)
}
