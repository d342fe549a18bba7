package menu

import (
	"fmt"

	"github.com/softvoice/menuvox/internal/logging/events"
)

func loadPluginsMenu(ctx Context, _ Item) ([]Item, error) {
	plugins := ctx.Store.Plugins()
	items := make([]Item, 0, len(plugins))
	for _, plugin := range plugins {
		state := "disabled"
		if plugin.Enabled {
			state = "enabled"
		}
		items = append(items, Item{
			ID:          plugin.ID,
			Label:       fmt.Sprintf("%s (%s)", plugin.Name, state),
			SearchLabel: plugin.Name,
		})
	}
	return items, nil
}

// PluginToggleAction flips the plugin behind the item and reports the new
// state.
func PluginToggleAction(ctx Context, item Item) (string, error) {
	enabled, err := ctx.Store.TogglePlugin(item.ID)
	if err != nil {
		return "", err
	}
	events.Nav.Activate("plugins", item.ID, item.SearchText())
	if enabled {
		return fmt.Sprintf("Enabled %s", item.SearchText()), nil
	}
	return fmt.Sprintf("Disabled %s", item.SearchText()), nil
}

func pluginInfo(ctx Context, item Item) (string, bool) {
	for _, plugin := range ctx.Store.Plugins() {
		if plugin.ID == item.ID {
			state := "disabled"
			if plugin.Enabled {
				state = "enabled"
			}
			return fmt.Sprintf("%s by %s, currently %s", plugin.Name, plugin.Author, state), true
		}
	}
	return "", false
}
