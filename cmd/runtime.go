package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/zjrosen/parlor/internal/config"
	"github.com/zjrosen/parlor/internal/errorreport"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/memroom"
	"github.com/zjrosen/parlor/internal/platform"
	"github.com/zjrosen/parlor/internal/settings"
	"github.com/zjrosen/parlor/internal/tracing"
	"github.com/zjrosen/parlor/internal/ui/roomview"
	"github.com/zjrosen/parlor/internal/viewmodel"
	"github.com/zjrosen/parlor/internal/watcher"
)

const (
	roomAlias  = "#parlor:parlor.local"
	lobbyID    = "!lobby:parlor.local"
	lobbyAlias = "#lobby:parlor.local"
	systemUser = "@parlor:parlor.local"
)

// runtime owns everything the room view needs for one run of the program.
type runtime struct {
	tracer    *tracing.Provider
	db        *settings.DB
	store     *settings.Store
	errors    *errorreport.Queue
	picker    *platform.Picker
	navigator *roomview.Navigator
	room      *memroom.Room
	calls     *memroom.CallHandler
	session   *memroom.Session
	watcher   *watcher.Watcher
	files     <-chan string
	vm        *viewmodel.RoomViewModel
}

// newRuntime builds the collaborators described by cfg. On error everything
// built so far is closed.
func newRuntime(ctx context.Context, cfg config.Config) (rt *runtime, err error) {
	rt = &runtime{
		errors:    errorreport.NewQueue(),
		picker:    platform.NewPicker(),
		navigator: roomview.NewNavigator(),
		calls:     memroom.NewCallHandler(),
		session:   memroom.NewSession(),
	}
	defer func() {
		if err != nil {
			_ = rt.Close(ctx)
			rt = nil
		}
	}()

	rt.tracer, err = tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return rt, fmt.Errorf("starting tracing: %w", err)
	}

	var reader platform.SettingsReader
	if cfg.Settings.DBPath != "" {
		rt.db, err = settings.NewDB(cfg.Settings.DBPath)
		if err != nil {
			return rt, err
		}
		rt.store = settings.NewStore(rt.db)
		reader = rt.store
	}

	rt.room = memroom.NewRoom(memroom.Options{
		Name:     cfg.Room.Name,
		UserID:   cfg.Room.UserID,
		Archived: cfg.Room.Archived,
	})
	rt.room.Receive(systemUser, "Welcome to "+rt.room.Name()+". /join "+lobbyAlias+" opens the lobby.")
	rt.session.AddRoom(rt.room, roomAlias)
	rt.session.AddRoom(memroom.NewRoom(memroom.Options{ID: lobbyID, Name: "Lobby", UserID: cfg.Room.UserID}), lobbyAlias)

	if cfg.Media.DropDir != "" {
		if err = rt.watchDropFolder(cfg.Media); err != nil {
			return rt, err
		}
	}

	rt.vm, err = viewmodel.NewRoomViewModel(viewmodel.RoomConfig{
		Room:   rt.room,
		Errors: rt.errors,
		Platform: platform.New(platform.Config{
			Picker:     rt.picker,
			Settings:   reader,
			ReadPixels: cfg.Media.ReadPixels,
		}),
		CallHandler:      rt.calls,
		Navigator:        rt.navigator,
		Session:          rt.session,
		Features:         viewmodel.Features{Calls: cfg.Features.Calls},
		ClearUnreadDelay: cfg.Room.ClearUnreadDelay,
		Tracer:           rt.tracer.Tracer(),
	})
	if err != nil {
		return rt, fmt.Errorf("creating room view-model: %w", err)
	}

	log.Info(log.CatRoom, "Runtime ready", "room", rt.room.ID(), "tracing", rt.tracer.Enabled())
	return rt, nil
}

func (rt *runtime) watchDropFolder(media config.MediaConfig) error {
	wcfg := watcher.DefaultConfig(media.DropDir)
	if media.Debounce > 0 {
		wcfg.DebounceDur = media.Debounce
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		return err
	}
	files, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}
	rt.watcher = w
	rt.files = files
	return nil
}

// Close disposes the room view-model and shuts down every collaborator.
func (rt *runtime) Close(ctx context.Context) error {
	var errs []error
	if rt.vm != nil {
		rt.vm.Dispose()
	}
	if rt.watcher != nil {
		errs = append(errs, rt.watcher.Stop())
	}
	rt.errors.Close()
	if rt.db != nil {
		errs = append(errs, rt.db.Close())
	}
	if rt.tracer != nil {
		errs = append(errs, rt.tracer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
