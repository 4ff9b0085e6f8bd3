package haentity

import (
	"net/url"

	"github.com/carlmjohnson/versioninfo"

	"github.com/nlowe/haentity/discovery"
)

// Origin provides information about the software providing devices over MQTT to Home Assistant. The origin details
// are logged by Home Assistant when an entity is discovered or updated, which helps with troubleshooting.
type Origin struct {
	// The name of the application that is the origin of the discovered MQTT item.
	Name string
	// Software version of the application that supplies the discovered MQTT item.
	SoftwareVersion string
	// Support URL of the application that supplies the discovered MQTT item.
	SupportURL *url.URL
}

// Document returns the origin object for a discovery document.
func (o Origin) Document() discovery.Document {
	doc := discovery.Document{}
	discovery.MaybeSet(doc, discovery.FieldOriginName, o.Name)
	discovery.MaybeSet(doc, discovery.FieldOriginSoftwareVersion, o.SoftwareVersion)
	if o.SupportURL != nil {
		doc[discovery.FieldOriginSupportURL] = o.SupportURL
	}

	return doc
}

var (
	supportURL, _ = url.Parse("https://github.com/nlowe/haentity")

	// DefaultOrigin identifies this library. The version comes from the main module's build information.
	DefaultOrigin = Origin{
		Name:            "haentity",
		SoftwareVersion: versioninfo.Short(),
		SupportURL:      supportURL,
	}
)
