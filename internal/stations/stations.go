// Package stations carries the fixed mapping between GTA V radio archive
// names and the display names GTRadio presents to the listener.
package stations

// Station pairs an RPF archive identifier with its in-game display name.
type Station struct {
	Identifier  string
	DisplayName string
}

// All lists every known radio station in stable order. DLC stations are
// included; their archives are simply absent on installs without the DLC.
var All = []Station{
	{"RADIO_01_CLASS_ROCK", "Los Santos Rock Radio"},
	{"RADIO_02_POP", "Non-Stop-Pop FM"},
	{"RADIO_03_HIPHOP_NEW", "Radio Los Santos"},
	{"RADIO_04_PUNK", "Channel X"},
	{"RADIO_05_TALK_01", "West Coast Talk Radio"},
	{"RADIO_06_COUNTRY", "Rebel Radio"},
	{"RADIO_07_DANCE_01", "Soulwax FM"},
	{"RADIO_08_MEXICAN", "East Los FM"},
	{"RADIO_09_HIPHOP_OLD", "West Coast Classics"},
	{"RADIO_11_TALK_02", "Blaine County Radio"},
	{"RADIO_12_REGGAE", "The Blue Ark"},
	{"RADIO_13_JAZZ", "Worldwide FM"},
	{"RADIO_14_DANCE_02", "FlyLo FM"},
	{"RADIO_15_MOTOWN", "The Lowdown 91.1"},
	{"RADIO_16_SILVERLAKE", "Radio Mirror Park"},
	{"RADIO_17_FUNK", "Space 103.2"},
	{"RADIO_18_90S_ROCK", "Vinewood Boulevard Radio"},
	{"RADIO_19_USER", "Self Radio"},
	{"RADIO_20_THELAB", "The Lab"},
	{"RADIO_21_DLC_XM17", "Blonded Los Santos 97.8 FM"},
	{"RADIO_22_DLC_BATTLE_MIX1", "Los Santos Underground Radio"},
	{"RADIO_23_DLC_XM19_RADIO", "iFruit Radio"},
	{"RADIO_27_DLC_PRP2022_RADIO", "Motomami Los Santos"},
}

var byIdentifier = func() map[string]Station {
	m := make(map[string]Station, len(All))
	for _, s := range All {
		m[s.Identifier] = s
	}
	return m
}()

// Lookup returns the station for the given archive identifier.
func Lookup(identifier string) (Station, bool) {
	s, ok := byIdentifier[identifier]
	return s, ok
}

// Known reports whether identifier names a radio station archive.
func Known(identifier string) bool {
	_, ok := byIdentifier[identifier]
	return ok
}
