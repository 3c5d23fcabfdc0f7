package carrier

// Sources is everything the merger reads for one resolution.
type Sources struct {
	Selection Selection
	Carrier   Blob
	Operator  Blob
	Radio     RadioInfo
}

type identityStep func(Identity, Sources) Identity

type networkStep func(Network, Identity, Sources) Network

// Merger combines config files and live provider data into the SIM and
// network identities.
type Merger struct {
	Lookup    CountryLookup
	MultiSlot bool
}

func (m Merger) Merge(src Sources) (Identity, Network) {
	identity := Identity{Role: src.Selection.Role}
	for _, step := range m.identitySteps() {
		identity = step(identity, src)
	}
	var network Network
	for _, step := range m.networkSteps() {
		network = step(network, identity, src)
	}
	return identity, network
}

func (m Merger) identitySteps() []identityStep {
	return []identityStep{
		seedIdentityDigits,
		seedIdentityBundle,
		m.identityCountry,
		m.applyProvider,
		m.markActive,
		nameIdentity,
	}
}

func (m Merger) networkSteps() []networkStep {
	return []networkStep{
		seedNetworkDigits,
		seedNetworkBundle,
		m.fallbackNetworkCodes,
		m.networkCountry,
	}
}

func seedIdentityDigits(i Identity, src Sources) Identity {
	i.RawDigits = ParseDigits(src.Carrier.Target)
	i.MCC, i.MNC = SplitDigits(i.RawDigits)
	return i
}

func seedIdentityBundle(i Identity, src Sources) Identity {
	i.FullName, i.statusBarName = DefaultName, DefaultName
	i.MinimalSetupEligible = true
	i.RoamingPartners = nil
	b := src.Carrier.Bundle
	if b == nil {
		return i
	}
	if b.CarrierName != "" {
		i.FullName = b.CarrierName
	}
	if b.StatusBarName != "" {
		i.statusBarName = b.StatusBarName
	}
	i.RoamingPartners = ParsePLMNs(b.SupportedPLMNs)
	i.MinimalSetupEligible = MinimalSetupEligible(b.SupportedPLMNs)
	return i
}

func (m Merger) identityCountry(i Identity, _ Sources) Identity {
	i.ISOCountry = m.Lookup(i.MCC, i.MNC)
	return i
}

// applyProvider overlays the live provider record of the selected slot. A
// provider reporting both codes is authoritative over the config file.
func (m Merger) applyProvider(i Identity, src Sources) Identity {
	p, tech, ok := src.Radio.provider(src.Selection.SlotID, m.MultiSlot)
	i.ConnectedTechnology = tech
	if !ok {
		return i
	}
	i.providerName = p.Name
	i.EID = p.EID
	i.VOIPAllowed = p.AllowsVOIP
	if p.MCC != "" && p.MNC != "" {
		if p.MCC != i.MCC || p.MNC != i.MNC {
			i.MCC, i.MNC = p.MCC, p.MNC
			i.ISOCountry = m.Lookup(i.MCC, i.MNC)
		}
	}
	return i
}

// markActive flags the identity as live. On multi-slot platforms that needs a
// provider with both codes, single-slot platforms only know the primary SIM.
func (m Merger) markActive(i Identity, src Sources) Identity {
	if !m.MultiSlot {
		i.Active = i.Role == Primary
		return i
	}
	p, _, ok := src.Radio.provider(src.Selection.SlotID, true)
	i.Active = ok && p.MCC != "" && p.MNC != ""
	return i
}

func nameIdentity(i Identity, _ Sources) Identity {
	switch {
	case i.providerName != "" && i.providerName != DefaultName:
		i.DisplayName = i.providerName
	case i.FullName != DefaultName:
		i.DisplayName = i.FullName
	default:
		i.DisplayName = i.statusBarName
	}
	return i
}

func seedNetworkDigits(n Network, _ Identity, src Sources) Network {
	n.RawDigits = ParseDigits(src.Operator.Target)
	n.MCC, n.MNC = SplitDigits(n.RawDigits)
	return n
}

func seedNetworkBundle(n Network, i Identity, src Sources) Network {
	n.DisplayName, n.FullName = DefaultName, DefaultName
	n.ConnectedTechnology = i.ConnectedTechnology
	if b := src.Operator.Bundle; b != nil {
		if b.StatusBarName != "" {
			n.DisplayName = b.StatusBarName
		}
		if b.CarrierName != "" {
			n.FullName = b.CarrierName
		}
	}
	if n.DisplayName == DefaultName && n.FullName != DefaultName {
		n.DisplayName = n.FullName
	}
	return n
}

// fallbackNetworkCodes borrows the provider codes when the operator file
// gave none.
func (m Merger) fallbackNetworkCodes(n Network, _ Identity, src Sources) Network {
	if n.MCC != UnknownMCC || n.MNC != UnknownMNC {
		return n
	}
	p, _, ok := src.Radio.provider(src.Selection.SlotID, m.MultiSlot)
	if !ok {
		return n
	}
	if p.MCC != "" {
		n.MCC = p.MCC
	}
	if p.MNC != "" {
		n.MNC = p.MNC
	}
	return n
}

func (m Merger) networkCountry(n Network, _ Identity, _ Sources) Network {
	n.ISOCountry = m.Lookup(n.MCC, n.MNC)
	return n
}
