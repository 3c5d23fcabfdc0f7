package modem

const Modem3GPPInterface = ModemInterface + ".Modem3gpp"

func (m *Modem) RegistrationState() (Modem3gppRegistrationState, error) {
	v, err := property[uint32](m.dbusObject, Modem3GPPInterface+".RegistrationState")
	return Modem3gppRegistrationState(v), err
}

func (m *Modem) OperatorCode() (string, error) {
	return property[string](m.dbusObject, Modem3GPPInterface+".OperatorCode")
}

func (m *Modem) OperatorName() (string, error) {
	return property[string](m.dbusObject, Modem3GPPInterface+".OperatorName")
}
