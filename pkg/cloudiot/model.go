package cloudiot

// Enabled states and key formats as named by the cloudiot v1 API.
const (
	MqttEnabled  = "MQTT_ENABLED"
	MqttDisabled = "MQTT_DISABLED"
	HTTPEnabled  = "HTTP_ENABLED"
	HTTPDisabled = "HTTP_DISABLED"

	KeyFormatES256PEM   = "ES256_PEM"
	KeyFormatRSAX509PEM = "RSA_X509_PEM"
)

type EventNotificationConfig struct {
	SubfolderMatches string `json:"subfolderMatches,omitempty"`
	PubsubTopicName  string `json:"pubsubTopicName,omitempty"`
}

type StateNotificationConfig struct {
	PubsubTopicName string `json:"pubsubTopicName,omitempty"`
}

type MqttConfig struct {
	MqttEnabledState string `json:"mqttEnabledState,omitempty"`
}

type HTTPConfig struct {
	HTTPEnabledState string `json:"httpEnabledState,omitempty"`
}

// GetMqttEnabledState returns the state or an empty string when c is nil.
func (c *MqttConfig) GetMqttEnabledState() string {
	if c == nil {
		return ""
	}
	return c.MqttEnabledState
}

// GetHTTPEnabledState returns the state or an empty string when c is nil.
func (c *HTTPConfig) GetHTTPEnabledState() string {
	if c == nil {
		return ""
	}
	return c.HTTPEnabledState
}

type DeviceRegistry struct {
	ID                       string                    `json:"id,omitempty"`
	Name                     string                    `json:"name,omitempty"`
	EventNotificationConfigs []EventNotificationConfig `json:"eventNotificationConfigs,omitempty"`
	StateNotificationConfig  *StateNotificationConfig  `json:"stateNotificationConfig,omitempty"`
	MqttConfig               *MqttConfig               `json:"mqttConfig,omitempty"`
	HTTPConfig               *HTTPConfig               `json:"httpConfig,omitempty"`
	LogLevel                 string                    `json:"logLevel,omitempty"`
}

type ListDeviceRegistriesResponse struct {
	DeviceRegistries []DeviceRegistry `json:"deviceRegistries,omitempty"`
	NextPageToken    string           `json:"nextPageToken,omitempty"`
}

type PublicKeyCredential struct {
	Format string `json:"format,omitempty"`
	Key    string `json:"key,omitempty"`
}

type DeviceCredential struct {
	PublicKey      *PublicKeyCredential `json:"publicKey,omitempty"`
	ExpirationTime string               `json:"expirationTime,omitempty"`
}

// GetFormat returns the public key format or an empty string.
func (c DeviceCredential) GetFormat() string {
	if c.PublicKey == nil {
		return ""
	}
	return c.PublicKey.Format
}

type DeviceConfig struct {
	Version         string `json:"version,omitempty"`
	CloudUpdateTime string `json:"cloudUpdateTime,omitempty"`
	DeviceAckTime   string `json:"deviceAckTime,omitempty"`
	BinaryData      []byte `json:"binaryData,omitempty"`
}

type DeviceState struct {
	UpdateTime string `json:"updateTime,omitempty"`
	BinaryData []byte `json:"binaryData,omitempty"`
}

type Device struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name,omitempty"`
	NumID              string             `json:"numId,omitempty"`
	Credentials        []DeviceCredential `json:"credentials,omitempty"`
	LastHeartbeatTime  string             `json:"lastHeartbeatTime,omitempty"`
	LastEventTime      string             `json:"lastEventTime,omitempty"`
	LastStateTime      string             `json:"lastStateTime,omitempty"`
	LastConfigAckTime  string             `json:"lastConfigAckTime,omitempty"`
	LastConfigSendTime string             `json:"lastConfigSendTime,omitempty"`
	Blocked            bool               `json:"blocked,omitempty"`
	Config             *DeviceConfig      `json:"config,omitempty"`
	State              *DeviceState       `json:"state,omitempty"`
	Metadata           map[string]string  `json:"metadata,omitempty"`
}

type ListDevicesResponse struct {
	Devices       []Device `json:"devices,omitempty"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

type ListDeviceConfigVersionsResponse struct {
	DeviceConfigs []DeviceConfig `json:"deviceConfigs,omitempty"`
}

type ListDeviceStatesResponse struct {
	DeviceStates []DeviceState `json:"deviceStates,omitempty"`
}

type ModifyCloudToDeviceConfigRequest struct {
	VersionToUpdate string `json:"versionToUpdate,omitempty"`
	BinaryData      []byte `json:"binaryData"`
}

type Binding struct {
	Role    string   `json:"role,omitempty"`
	Members []string `json:"members,omitempty"`
}

type Policy struct {
	Version  int       `json:"version,omitempty"`
	Etag     []byte    `json:"etag,omitempty"`
	Bindings []Binding `json:"bindings,omitempty"`
}

type SetIamPolicyRequest struct {
	Policy *Policy `json:"policy,omitempty"`
}

type GetIamPolicyRequest struct{}
