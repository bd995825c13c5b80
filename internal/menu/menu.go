// Package menu builds the native application menu and routes command
// activations to named events on the front-end.
package menu

// Event names for frontend communication.
const (
	EventAbout         = "about"
	EventSetLayout     = "set-layout"
	EventToggleXRay    = "toggle-xray"
	EventResetCamera   = "reset-camera"
	EventToggleSidebar = "toggle-sidebar"
)

// Layout payloads carried by EventSetLayout.
const (
	LayoutConceptCentric = "concept-centric"
	LayoutSphere         = "sphere"
	LayoutGrid           = "grid"
)

// Command is one entry of the closed menu command set. ID is the stable
// dispatch identifier, never shown to the user; Label is the menu text.
// Payload is forwarded with the event when HasPayload is set.
type Command struct {
	ID         string
	Label      string
	Event      string
	Payload    string
	HasPayload bool
}

// commands is the full command set, in menu order. The set is closed:
// there is no dynamic registration.
var commands = []Command{
	{ID: "about", Label: "About", Event: EventAbout},
	{ID: "set_layout_concept", Label: "Concept-Centric Layout", Event: EventSetLayout, Payload: LayoutConceptCentric, HasPayload: true},
	{ID: "set_layout_sphere", Label: "Sphere Layout", Event: EventSetLayout, Payload: LayoutSphere, HasPayload: true},
	{ID: "set_layout_grid", Label: "Grid Layout", Event: EventSetLayout, Payload: LayoutGrid, HasPayload: true},
	{ID: "toggle_xray", Label: "Toggle X-Ray", Event: EventToggleXRay},
	{ID: "reset_camera", Label: "Reset Camera", Event: EventResetCamera},
	{ID: "toggle_sidebar", Label: "Toggle Sidebar", Event: EventToggleSidebar},
}

// Commands returns the command set in menu order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// Emitter delivers events to the front-end. Satisfied by the Wails
// application event manager.
type Emitter interface {
	Emit(name string, data ...any) bool
}

// Router dispatches menu activations as front-end events.
type Router struct {
	emitter Emitter
	byID    map[string]Command
}

// NewRouter returns a router bound to the given emitter.
func NewRouter(emitter Emitter) *Router {
	byID := make(map[string]Command, len(commands))
	for _, cmd := range commands {
		byID[cmd.ID] = cmd
	}
	return &Router{emitter: emitter, byID: byID}
}

// Dispatch emits the event mapped to the given command identifier.
// Unknown identifiers are a no-op, never an error; emission is
// fire-and-forget.
func (r *Router) Dispatch(id string) {
	cmd, ok := r.byID[id]
	if !ok {
		return
	}
	if cmd.HasPayload {
		r.emitter.Emit(cmd.Event, cmd.Payload)
		return
	}
	r.emitter.Emit(cmd.Event)
}
