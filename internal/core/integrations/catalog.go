package integrations

// Integration describes one third-party service an agent can be connected to.
// Pure static documentation data: descriptions and credential setup steps
// rendered by the dashboard, no behavior.
type Integration struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	SetupSteps  []string `json:"setup_steps"`
	DocsURL     string   `json:"docs_url,omitempty"`
}

// Catalog is an immutable lookup over the built-in integration entries.
type Catalog struct {
	order   []string
	entries map[string]Integration
}

// NewCatalog builds a catalog preserving entry order.
func NewCatalog(entries []Integration) *Catalog {
	c := &Catalog{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Integration, len(entries)),
	}
	for _, e := range entries {
		if _, exists := c.entries[e.ID]; exists {
			continue
		}
		c.order = append(c.order, e.ID)
		c.entries[e.ID] = e
	}
	return c
}

// DefaultCatalog returns the built-in integration table.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinIntegrations())
}

// Get looks up an integration by id.
func (c *Catalog) Get(id string) (Integration, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// List returns all integrations in declared order.
func (c *Catalog) List() []Integration {
	out := make([]Integration, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}

func builtinIntegrations() []Integration {
	return []Integration{
		{
			ID:          "google-calendar",
			Name:        "Google Calendar",
			Category:    "scheduling",
			Description: "Let your agent create and check bookings against a Google Calendar.",
			SetupSteps: []string{
				"Create a project in Google Cloud Console and enable the Calendar API",
				"Create an OAuth client and download the credentials JSON",
				"Paste the client ID and secret into the integration form",
				"Authorize the calendar you want the agent to manage",
			},
			DocsURL: "https://developers.google.com/calendar/api",
		},
		{
			ID:          "stripe",
			Name:        "Stripe",
			Category:    "payments",
			Description: "Collect payments and look up invoice status from conversations.",
			SetupSteps: []string{
				"Open the Stripe dashboard and go to Developers → API keys",
				"Create a restricted key with read access to invoices and payment links",
				"Paste the key into the integration form",
			},
			DocsURL: "https://stripe.com/docs/api",
		},
		{
			ID:          "shopify",
			Name:        "Shopify",
			Category:    "commerce",
			Description: "Answer product questions and track orders from your Shopify store.",
			SetupSteps: []string{
				"In Shopify admin, create a custom app under Settings → Apps",
				"Grant read_products and read_orders scopes",
				"Install the app and copy the Admin API access token",
				"Paste the token and your shop domain into the integration form",
			},
			DocsURL: "https://shopify.dev/docs/api",
		},
		{
			ID:          "whatsapp-business",
			Name:        "WhatsApp Business",
			Category:    "messaging",
			Description: "Run your agent on a WhatsApp Business number.",
			SetupSteps: []string{
				"Create a WhatsApp agent in the dashboard",
				"Open the pairing page and scan the QR code from the WhatsApp app",
				"Keep the phone online until the session is established",
			},
		},
		{
			ID:          "google-sheets",
			Name:        "Google Sheets",
			Category:    "data",
			Description: "Log leads and conversation summaries to a spreadsheet.",
			SetupSteps: []string{
				"Enable the Sheets API in Google Cloud Console",
				"Create a service account and download its key file",
				"Share the target spreadsheet with the service account email",
				"Paste the key JSON into the integration form",
			},
			DocsURL: "https://developers.google.com/sheets/api",
		},
		{
			ID:          "hubspot",
			Name:        "HubSpot",
			Category:    "crm",
			Description: "Create contacts and deals in HubSpot from qualified conversations.",
			SetupSteps: []string{
				"In HubSpot, create a private app under Settings → Integrations",
				"Grant crm.objects.contacts and crm.objects.deals write scopes",
				"Copy the access token into the integration form",
			},
			DocsURL: "https://developers.hubspot.com",
		},
		{
			ID:          "slack",
			Name:        "Slack",
			Category:    "notifications",
			Description: "Notify your team channel when the agent hands off a conversation.",
			SetupSteps: []string{
				"Create a Slack app and enable incoming webhooks",
				"Add a webhook to the channel that should receive handoffs",
				"Paste the webhook URL into the integration form",
			},
			DocsURL: "https://api.slack.com/messaging/webhooks",
		},
		{
			ID:          "calendly",
			Name:        "Calendly",
			Category:    "scheduling",
			Description: "Share live booking links matched to the service the customer asks for.",
			SetupSteps: []string{
				"Generate a personal access token under Calendly → Integrations",
				"Paste the token into the integration form",
				"Pick the event types the agent may offer",
			},
			DocsURL: "https://developer.calendly.com",
		},
		{
			ID:          "mailchimp",
			Name:        "Mailchimp",
			Category:    "marketing",
			Description: "Subscribe opted-in customers to a Mailchimp audience.",
			SetupSteps: []string{
				"Create an API key under Account → Extras → API keys",
				"Paste the key and your audience ID into the integration form",
			},
			DocsURL: "https://mailchimp.com/developer",
		},
		{
			ID:          "zendesk",
			Name:        "Zendesk",
			Category:    "support",
			Description: "Escalate unresolved conversations as Zendesk tickets.",
			SetupSteps: []string{
				"Enable token access under Admin → Channels → API",
				"Create an API token",
				"Paste the token, your subdomain, and an agent email into the form",
			},
			DocsURL: "https://developer.zendesk.com",
		},
		{
			ID:          "twilio-sms",
			Name:        "Twilio SMS",
			Category:    "messaging",
			Description: "Send booking confirmations by SMS.",
			SetupSteps: []string{
				"Copy the Account SID and Auth Token from the Twilio console",
				"Buy or pick a sending phone number",
				"Paste all three values into the integration form",
			},
			DocsURL: "https://www.twilio.com/docs/sms",
		},
		{
			ID:          "zapier",
			Name:        "Zapier",
			Category:    "automation",
			Description: "Forward structured conversation events to any Zapier workflow.",
			SetupSteps: []string{
				"Create a Zap with the Webhooks by Zapier trigger",
				"Copy the catch-hook URL",
				"Paste the URL into the integration form and pick the events to forward",
			},
			DocsURL: "https://zapier.com/apps/webhook/integrations",
		},
	}
}
