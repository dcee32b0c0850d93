package snap

import (
	"fmt"

	"github.com/openstack-snaps/manila-data/internal/layout"
	"github.com/openstack-snaps/manila-data/internal/messages"
)

// Paths holds the snap's named filesystem roots.
type Paths struct {
	Common     string
	Data       string
	RealHome   string
	Snap       string
	UserCommon string
	UserData   string
}

// Slot is a named path root.
type Slot struct {
	Name string
	Path string
}

// Slots enumerates every named root in a fixed order.
func (p Paths) Slots() []Slot {
	return []Slot{
		{Name: "common", Path: p.Common},
		{Name: "data", Path: p.Data},
		{Name: "real_home", Path: p.RealHome},
		{Name: "snap", Path: p.Snap},
		{Name: "user_common", Path: p.UserCommon},
		{Name: "user_data", Path: p.UserData},
	}
}

// Roots maps the location classes used by layout specifications to their roots.
func (p Paths) Roots() layout.Roots {
	return layout.Roots{
		layout.Common: p.Common,
		layout.Data:   p.Data,
	}
}

// PathsFromEnv reads the snap path environment. SNAP, SNAP_COMMON, and
// SNAP_DATA are required; the user and home roots may be unset for system hooks.
func PathsFromEnv(lookupEnv func(string) (string, bool)) (Paths, error) {
	var missing error
	get := func(key string, required bool) string {
		value, ok := lookupEnv(key)
		if (!ok || value == "") && required && missing == nil {
			missing = fmt.Errorf(messages.SnapMissingEnvFmt, key)
		}
		return value
	}
	paths := Paths{
		Common:     get("SNAP_COMMON", true),
		Data:       get("SNAP_DATA", true),
		RealHome:   get("SNAP_REAL_HOME", false),
		Snap:       get("SNAP", true),
		UserCommon: get("SNAP_USER_COMMON", false),
		UserData:   get("SNAP_USER_DATA", false),
	}
	if missing != nil {
		return Paths{}, missing
	}
	return paths, nil
}
