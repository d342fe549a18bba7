package menu

import (
	"fmt"

	"github.com/softvoice/menuvox/internal/host"
)

func loadSettingsMenu(ctx Context, _ Item) ([]Item, error) {
	categories := ctx.Store.SettingCategories()
	items := make([]Item, 0, len(categories))
	for _, category := range categories {
		items = append(items, Item{ID: category, Label: PrettyLabel(category)})
	}
	return items, nil
}

func loadSettingsCategoryMenu(ctx Context, parent Item) ([]Item, error) {
	settings := ctx.Store.Settings(parent.ID)
	items := make([]Item, 0, len(settings))
	for _, setting := range settings {
		items = append(items, Item{
			ID:          setting.Key,
			Label:       fmt.Sprintf("%s: %s", setting.Label, setting.Value),
			SearchLabel: setting.Label,
		})
	}
	return items, nil
}

type hostField struct {
	store   *host.Store
	key     string
	label   string
	current string
}

func (f *hostField) Label() string { return f.label }

func (f *hostField) Value() string { return f.current }

func (f *hostField) Commit(value string) error {
	return f.store.SetSetting(f.key, value)
}

func settingField(ctx Context, item Item) (Field, bool) {
	setting, ok := ctx.Store.Setting(item.ID)
	if !ok {
		return nil, false
	}
	return &hostField{
		store:   ctx.Store,
		key:     setting.Key,
		label:   setting.Label,
		current: setting.Value,
	}, true
}

func settingInfo(ctx Context, item Item) (string, bool) {
	setting, ok := ctx.Store.Setting(item.ID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s. %s Current value: %s", setting.Label, setting.Description, setting.Value), true
}
