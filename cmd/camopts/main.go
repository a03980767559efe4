package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/jonntd/anima/camera"
	"github.com/jonntd/anima/config"
	"github.com/jonntd/anima/dispatch"
	"github.com/jonntd/anima/pkg/api"
	"github.com/jonntd/anima/store"
	"github.com/jonntd/anima/ui"
	"github.com/jonntd/anima/util/log"
)

func main() {
	action := flag.String("action", string(camera.ActionShow),
		"what to do: execute, show, or return")
	nodes := flag.Int("nodes", 0,
		"creation variant: 1 camera, 2 camera and aim, 3 camera, aim, and up (0 keeps the stored value)")
	portAddr := flag.String("port", config.DefaultCommandPortAddr,
		"host command port address used by execute")
	bridge := flag.Bool("bridge", false,
		"run the local bridge API alongside the dialog")
	flag.Parse()

	switch camera.Action(*action) {
	case camera.ActionShow:
		runDialog(*nodes, *portAddr, *bridge)
	case camera.ActionExecute, camera.ActionReturn:
		runHeadless(camera.Action(*action), *nodes, *portAddr)
	default:
		fmt.Fprintf(os.Stderr, "unknown action %q\n", *action)
		flag.Usage()
		os.Exit(2)
	}
}

// runHeadless executes or returns the command using the durable settings
// database, without opening the dialog.
func runHeadless(action camera.Action, nodes int, portAddr string) {
	st, err := store.OpenSQLite(config.SettingsDBPath())
	if err != nil {
		log.Fatalf("Failed to open settings database: %v", err)
	}
	defer st.Close()

	settings := camera.NewSettings(st)
	if nodes > 0 {
		settings.SetNodeCount(nodes)
	}

	box := camera.NewOptionBox(settings, dispatch.NewCommandPort(portAddr))
	out, err := box.Do(action)
	if err != nil {
		log.Fatalf("Camera %s failed: %v", action, err)
	}
	if out != "" {
		fmt.Println(out)
	}
}

// runDialog opens the option box as a desktop app, persisting settings in
// the fyne preferences of the app id.
func runDialog(nodes int, portAddr string, withBridge bool) {
	a := app.NewWithID("com.jonntd.anima.camopts")

	settings := camera.NewSettings(store.NewPrefs(a.Preferences()))
	if nodes > 0 {
		settings.SetNodeCount(nodes)
	}

	dispatcher := camera.Dispatcher(dispatch.NewCommandPort(portAddr))
	box := camera.NewOptionBox(settings, dispatcher)

	if withBridge {
		server := api.NewServer(box)
		box = camera.NewOptionBox(settings, dispatch.NewMulti(dispatcher, server))
		go func() {
			if err := server.Start(); err != nil {
				log.Printf("bridge stopped: %v", err)
			}
		}()
		defer server.Stop()
	}

	box.SetShowHook(func(v camera.Variant) {
		ui.ShowOptionBox(fyne.CurrentApp(), box, v)
	})
	if _, err := box.Do(camera.ActionShow); err != nil {
		log.Fatalf("Failed to open option box: %v", err)
	}

	a.Run()
}
