// Package branding holds the site identity shared by every page.
package branding

// AppName is the public name of the organisation behind the site.
const AppName = "Najran Devs"

// ContactEmail is the single public contact address.
const ContactEmail = "contact@najran.dev"

// ThemeColor is the browser chrome colour advertised in the document head.
const ThemeColor = "#1e1e1e"

// ContactMailto returns the mailto URL for ContactEmail.
func ContactMailto() string {
	return "mailto:" + ContactEmail
}
