package modem

const (
	ModemManagerInterface  = "org.freedesktop.ModemManager1"
	ModemManagerObjectPath = "/org/freedesktop/ModemManager1"
	ModemInterface         = ModemManagerInterface + ".Modem"
	SimInterface           = ModemManagerInterface + ".Sim"
	objectManagerMethod    = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"
)

type ModemPortType uint32

const (
	ModemPortTypeUnknown ModemPortType = iota + 1 // Unknown.
	ModemPortTypeNet                              // Net port.
	ModemPortTypeAt                               // AT port.
	ModemPortTypeQcdm                             // QCDM port.
	ModemPortTypeGps                              // GPS port.
	ModemPortTypeQmi                              // QMI port.
	ModemPortTypeMbim                             // MBIM port.
	ModemPortTypeAudio                            // Audio port.
)

type Modem3gppRegistrationState uint32

const (
	Modem3gppRegistrationStateIdle                    Modem3gppRegistrationState = iota // Not registered, not searching for new operator to register.
	Modem3gppRegistrationStateHome                                                      // Registered on home network.
	Modem3gppRegistrationStateSearching                                                 // Not registered, searching for new operator to register with.
	Modem3gppRegistrationStateDenied                                                    // Registration denied.
	Modem3gppRegistrationStateUnknown                                                   // Unknown registration status.
	Modem3gppRegistrationStateRoaming                                                   // Registered on a roaming network.
	Modem3gppRegistrationStateHomeSmsOnly                                               // Registered for "SMS only", home network (applicable only when on LTE).
	Modem3gppRegistrationStateRoamingSmsOnly                                            // Registered for "SMS only", roaming network (applicable only when on LTE).
	Modem3gppRegistrationStateEmergencyOnly                                             // Emergency services only.
	Modem3gppRegistrationStateHomeCsfbNotPreferred                                      // Registered for "CSFB not preferred", home network (applicable only when on LTE).
	Modem3gppRegistrationStateRoamingCsfbNotPreferred                                   // Registered for "CSFB not preferred", roaming network (applicable only when on LTE).
)

// Registered reports whether the modem is attached to a network.
func (s Modem3gppRegistrationState) Registered() bool {
	switch s {
	case Modem3gppRegistrationStateHome, Modem3gppRegistrationStateRoaming,
		Modem3gppRegistrationStateHomeSmsOnly, Modem3gppRegistrationStateRoamingSmsOnly,
		Modem3gppRegistrationStateHomeCsfbNotPreferred, Modem3gppRegistrationStateRoamingCsfbNotPreferred:
		return true
	}
	return false
}

type AccessTechnology uint32

const (
	AccessTechnologyPots AccessTechnology = 1 << iota // Analog wireline telephone.
	AccessTechnologyGsm                               // GSM.
	AccessTechnologyGsmCompact                        // Compact GSM.
	AccessTechnologyGprs                              // GPRS.
	AccessTechnologyEdge                              // EDGE (ETSI 27.007: "GSM w/EGPRS").
	AccessTechnologyUmts                              // UMTS (ETSI 27.007: "UTRAN").
	AccessTechnologyHsdpa                             // HSDPA (ETSI 27.007: "UTRAN w/HSDPA").
	AccessTechnologyHsupa                             // HSUPA (ETSI 27.007: "UTRAN w/HSUPA").
	AccessTechnologyHspa                              // HSPA (ETSI 27.007: "UTRAN w/HSDPA and HSUPA").
	AccessTechnologyHspaPlus                          // HSPA+ (ETSI 27.007: "UTRAN w/HSPA+").
	AccessTechnology1xrtt                             // CDMA2000 1xRTT.
	AccessTechnologyEvdo0                             // CDMA2000 EVDO revision 0.
	AccessTechnologyEvdoa                             // CDMA2000 EVDO revision A.
	AccessTechnologyEvdob                             // CDMA2000 EVDO revision B.
	AccessTechnologyLte                               // LTE (ETSI 27.007: "E-UTRAN").
	AccessTechnology5gnr                              // 5GNR (ETSI 27.007: "NG-RAN").
	AccessTechnologyLteCatM                           // Cat-M (ETSI 23.401: LTE Category M1/M2).
	AccessTechnologyLteNbIot                          // NB IoT (ETSI 23.401: LTE Category NB1/NB2).
)

var technologyTokens = []struct {
	mask  AccessTechnology
	token string
}{
	{AccessTechnology5gnr | AccessTechnologyLte, "NRNSA"},
	{AccessTechnology5gnr, "NR"},
	{AccessTechnologyLte | AccessTechnologyLteCatM | AccessTechnologyLteNbIot, "LTE"},
	{AccessTechnologyHspaPlus | AccessTechnologyHspa | AccessTechnologyHsdpa, "HSDPA"},
	{AccessTechnologyHsupa, "HSUPA"},
	{AccessTechnologyUmts, "WCDMA"},
	{AccessTechnologyEdge, "EDGE"},
	{AccessTechnologyGprs | AccessTechnologyGsm | AccessTechnologyGsmCompact, "GPRS"},
	{AccessTechnologyEvdob, "EVDOB"},
	{AccessTechnologyEvdoa, "EVDOA"},
	{AccessTechnologyEvdo0, "EVDO"},
	{AccessTechnology1xrtt, "CDMA1X"},
}

// Token returns the short token of the fastest technology in the set.
// NRNSA needs both the LTE and 5GNR bits, the other rows match any bit.
func (a AccessTechnology) Token() string {
	if a&technologyTokens[0].mask == technologyTokens[0].mask {
		return technologyTokens[0].token
	}
	for _, t := range technologyTokens[1:] {
		if a&t.mask != 0 {
			return t.token
		}
	}
	return ""
}
