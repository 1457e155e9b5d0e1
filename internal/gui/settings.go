// Package gui implements the settings window and the about dialog.
package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/restmode/restmode/internal/config"
	"github.com/restmode/restmode/internal/constants"
	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/logging"
	"github.com/restmode/restmode/internal/startup"
	"github.com/restmode/restmode/internal/theme"
	"github.com/restmode/restmode/internal/version"
)

// Settings owns the settings window. A single window instance is reused;
// opening it again focuses the existing one.
type Settings struct {
	app        fyne.App
	store      *config.Store
	configPath string
	bus        *events.EventBus
	logger     *logging.Logger

	win fyne.Window
}

// NewSettings creates the settings window controller.
func NewSettings(app fyne.App, store *config.Store, configPath string, bus *events.EventBus, logger *logging.Logger) *Settings {
	return &Settings{
		app:        app,
		store:      store,
		configPath: configPath,
		bus:        bus,
		logger:     logger,
	}
}

// Show opens (or focuses) the settings window.
func (s *Settings) Show() {
	fyne.Do(func() {
		if s.win != nil {
			s.win.RequestFocus()
			return
		}
		s.win = s.app.NewWindow(constants.AppName + " Settings")
		s.win.SetOnClosed(func() { s.win = nil })
		s.win.SetContent(s.buildForm())
		s.win.Resize(fyne.NewSize(460, 560))
		s.win.Show()
	})
}

func (s *Settings) buildForm() fyne.CanvasObject {
	cfg := s.store.Get()

	enabled := widget.NewCheck("Activate automatically when idle", nil)
	enabled.SetChecked(cfg.Activation.Enabled)

	delay := widget.NewEntry()
	delay.SetText(strconv.Itoa(cfg.Activation.DelayMinutes))

	themeSelect := widget.NewSelect(theme.Names(), nil)
	themeSelect.SetSelected(cfg.Display.Theme)

	timeFormat := widget.NewSelect([]string{"24h", "12h"}, nil)
	timeFormat.SetSelected(cfg.Display.TimeFormat)

	dateFormat := widget.NewSelect([]string{"full", "short", "iso"}, nil)
	dateFormat.SetSelected(cfg.Display.DateFormat)

	showSeconds := widget.NewCheck("Show seconds", nil)
	showSeconds.SetChecked(cfg.Display.ShowSeconds)

	showDate := widget.NewCheck("Show date", nil)
	showDate.SetChecked(cfg.Display.ShowDate)

	opacity := widget.NewSlider(0.1, 1.0)
	opacity.Step = 0.05
	opacity.SetValue(cfg.Display.Opacity)

	lowPower := widget.NewCheck("Low power mode (5s refresh)", nil)
	lowPower.SetChecked(cfg.Display.LowPowerMode)

	showWeather := widget.NewCheck("Show weather", nil)
	showWeather.SetChecked(cfg.Display.ShowWeather)

	weatherLocation := widget.NewEntry()
	weatherLocation.SetPlaceHolder("City, postcode, or lat,lon")
	weatherLocation.SetText(cfg.Weather.Location)

	weatherUnits := widget.NewSelect([]string{"metric", "imperial"}, nil)
	weatherUnits.SetSelected(cfg.Weather.Units)

	showTodo := widget.NewCheck("Show to-do card", nil)
	showTodo.SetChecked(cfg.Display.ShowTodo)

	todoItems := widget.NewMultiLineEntry()
	todoItems.SetPlaceHolder("One item per line")
	todoItems.SetText(strings.Join(cfg.Todo.Items, "\n"))

	screenOff := widget.NewEntry()
	screenOff.SetText(strconv.Itoa(cfg.System.TurnOffScreenDelayMinutes))

	startAtLogin := widget.NewCheck("Start at login", nil)
	startAtLogin.SetChecked(cfg.System.StartupEnabled)

	notifications := widget.NewCheck("Desktop notifications", nil)
	notifications.SetChecked(cfg.System.NotificationsEnabled)

	form := widget.NewForm(
		widget.NewFormItem("", enabled),
		widget.NewFormItem("Delay (minutes)", delay),
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Time format", timeFormat),
		widget.NewFormItem("Date format", dateFormat),
		widget.NewFormItem("", showSeconds),
		widget.NewFormItem("", showDate),
		widget.NewFormItem("Opacity", opacity),
		widget.NewFormItem("", lowPower),
		widget.NewFormItem("", showWeather),
		widget.NewFormItem("Weather location", weatherLocation),
		widget.NewFormItem("Weather units", weatherUnits),
		widget.NewFormItem("", showTodo),
		widget.NewFormItem("To-do items", todoItems),
		widget.NewFormItem("Turn off screen after (minutes, 0=never)", screenOff),
		widget.NewFormItem("", startAtLogin),
		widget.NewFormItem("", notifications),
	)

	form.SubmitText = "Save"
	form.OnSubmit = func() {
		delayMin, err := strconv.Atoi(strings.TrimSpace(delay.Text))
		if err != nil {
			dialog.ShowError(fmt.Errorf("delay must be a number of minutes"), s.win)
			return
		}
		screenOffMin, err := strconv.Atoi(strings.TrimSpace(screenOff.Text))
		if err != nil {
			dialog.ShowError(fmt.Errorf("screen-off delay must be a number of minutes"), s.win)
			return
		}

		next := s.store.Update(func(cfg *config.Config) {
			cfg.Activation.Enabled = enabled.Checked
			cfg.Activation.DelayMinutes = delayMin
			cfg.Display.Theme = themeSelect.Selected
			cfg.Display.TimeFormat = timeFormat.Selected
			cfg.Display.DateFormat = dateFormat.Selected
			cfg.Display.ShowSeconds = showSeconds.Checked
			cfg.Display.ShowDate = showDate.Checked
			cfg.Display.Opacity = opacity.Value
			cfg.Display.LowPowerMode = lowPower.Checked
			cfg.Display.ShowWeather = showWeather.Checked
			cfg.Display.ShowTodo = showTodo.Checked
			cfg.Weather.Location = strings.TrimSpace(weatherLocation.Text)
			cfg.Weather.Units = weatherUnits.Selected
			cfg.Todo.Items = splitTodoLines(todoItems.Text)
			cfg.System.TurnOffScreenDelayMinutes = screenOffMin
			cfg.System.StartupEnabled = startAtLogin.Checked
			cfg.System.NotificationsEnabled = notifications.Checked
			cfg.Clamp()
		})

		if err := next.Validate(); err != nil {
			dialog.ShowError(err, s.win)
			return
		}
		if err := config.Save(next, s.configPath); err != nil {
			s.logger.Error().Err(err).Msg("Failed to save settings")
			dialog.ShowError(err, s.win)
			return
		}
		if err := s.applyStartup(next.System.StartupEnabled); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to update start-at-login registration")
		}

		s.bus.Publish(events.NewConfigChanged("settings"))
		s.logger.Info().Msg("Settings saved")
		s.win.Close()
	}
	form.OnCancel = func() { s.win.Close() }

	return container.NewVScroll(container.NewPadded(form))
}

// applyStartup reconciles the OS start-at-login registration with the saved
// setting.
func (s *Settings) applyStartup(want bool) error {
	have, err := startup.Enabled()
	if err != nil {
		return err
	}
	if want == have {
		return nil
	}
	if want {
		return startup.Enable()
	}
	return startup.Disable()
}

// splitTodoLines parses the to-do entry text, dropping blank lines.
func splitTodoLines(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// ShowAbout opens a small about window.
func ShowAbout(app fyne.App) {
	fyne.Do(func() {
		win := app.NewWindow("About " + constants.AppName)
		label := widget.NewLabel(fmt.Sprintf("%s %s\nA gentle rest reminder for your desktop.", constants.AppName, version.Version))
		label.Alignment = fyne.TextAlignCenter
		win.SetContent(container.NewPadded(label))
		win.Resize(fyne.NewSize(320, 140))
		win.Show()
	})
}
