package checkout

import (
	"fmt"
	"net/url"
)

const DefaultDeepLinkBaseURL = "https://wa.me"

// BuildDeepLink composes the chat deep link that opens a WhatsApp conversation
// with the order message pre-filled. The phone number is configuration, not
// user input; no format validation happens here.
func BuildDeepLink(baseURL, phoneNumber, message string) string {
	return fmt.Sprintf("%s/%s?text=%s", baseURL, phoneNumber, url.QueryEscape(message))
}
