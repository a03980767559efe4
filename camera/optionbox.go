package camera

import "fmt"

// Action selects what the option box entry point does with the assembled
// command.
type Action string

// Supported actions. Each call is independent; there is no state carried
// between actions.
const (
	ActionExecute Action = "execute" // assemble and hand to the dispatcher
	ActionShow    Action = "show"    // open the option box form
	ActionReturn  Action = "return"  // assemble and return without executing
)

// Dispatcher executes an assembled camera command on the host.
type Dispatcher interface {
	Execute(cmd Command) error
}

// OptionBox is the top-level entry point tying settings, dispatcher, and
// the host's show hook together.
type OptionBox struct {
	settings   *Settings
	dispatcher Dispatcher
	show       func(Variant)
}

// NewOptionBox creates the entry point. The dispatcher may be nil when
// only the show and return actions are used.
func NewOptionBox(settings *Settings, dispatcher Dispatcher) *OptionBox {
	return &OptionBox{settings: settings, dispatcher: dispatcher}
}

// Settings returns the settings facade the option box operates on.
func (o *OptionBox) Settings() *Settings {
	return o.settings
}

// SetShowHook registers the host callback that opens the option box form.
// The hook receives the variant so the window can pick its title and help
// tag.
func (o *OptionBox) SetShowHook(show func(Variant)) {
	o.show = show
}

// Do performs one action. Execute returns an empty string after handing
// the command to the dispatcher; return yields the rendered command
// without executing it; show opens the form through the registered hook.
func (o *OptionBox) Do(action Action) (string, error) {
	switch action {
	case ActionExecute:
		o.settings.EnsureDefaults(false)
		cmd := o.settings.Command()
		if o.dispatcher == nil {
			return "", fmt.Errorf("no dispatcher configured for %q", action)
		}
		if err := o.dispatcher.Execute(cmd); err != nil {
			return "", fmt.Errorf("execute %s command: %w", cmd.Name, err)
		}
		return "", nil
	case ActionShow:
		if o.show != nil {
			o.show(o.settings.Variant())
		}
		return "", nil
	case ActionReturn:
		o.settings.EnsureDefaults(false)
		return o.settings.Assemble(), nil
	default:
		return "", fmt.Errorf("unknown option box action %q", action)
	}
}
