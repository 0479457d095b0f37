// ABOUTME: Preference commands: show and update the singleton record
// ABOUTME: Theme changes write both the theme key and the preferences record
package cli

import (
	"flag"
	"fmt"

	"github.com/serviceradar/radar/models"
)

// ShowPrefsCommand prints the stored preferences.
func ShowPrefsCommand(app *App, args []string) error {
	prefs := app.Store.Preferences()

	fmt.Printf("Theme:          %s\n", app.Store.Theme())
	fmt.Printf("Language:       %s\n", prefs.Language)
	fmt.Printf("Notifications:  %t\n", prefs.Notifications)
	fmt.Printf("Email updates:  %t\n", prefs.EmailUpdates)
	return nil
}

// SetPrefsCommand updates preferences from flags. Only provided flags change.
func SetPrefsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("prefs-set", flag.ExitOnError)
	theme := fs.String("theme", "", "Theme: light, dark, or system")
	language := fs.String("language", "", "UI language code")
	notifications := fs.String("notifications", "", "Enable notifications: true or false")
	emailUpdates := fs.String("email-updates", "", "Enable email updates: true or false")
	fs.Parse(args)

	prefs := app.Store.Preferences()

	if *theme != "" {
		switch *theme {
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		default:
			return fmt.Errorf("invalid theme %q (light, dark, or system)", *theme)
		}
		prefs.Theme = *theme
		// Theme lives under its own key too; keep the two in sync.
		if err := app.Store.SetTheme(*theme); err != nil {
			return err
		}
	}
	if *language != "" {
		prefs.Language = *language
	}
	if *notifications != "" {
		prefs.Notifications = *notifications == "true"
	}
	if *emailUpdates != "" {
		prefs.EmailUpdates = *emailUpdates == "true"
	}

	if err := app.Store.SetPreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	fmt.Println("✓ Preferences updated")
	return nil
}
