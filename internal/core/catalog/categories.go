package catalog

// builtinCategories returns the full catalog of preset business verticals.
func builtinCategories() []BusinessCategory {
	return []BusinessCategory{
		{
			ID:          "restaurant",
			DisplayName: "Restaurant & Food",
			Capabilities: []CapabilityDescriptor{
				{ID: "reservations", Label: "Table Reservations", DefaultEnabled: true},
				{ID: "menu", Label: "Menu & Pricing", DefaultEnabled: true},
				{ID: "orders", Label: "Food Orders", DefaultEnabled: true},
				{ID: "delivery", Label: "Delivery Tracking", DefaultEnabled: true},
				{ID: "offers", Label: "Special Offers", DefaultEnabled: true},
				{ID: "billing", Label: "Bill Payment", DefaultEnabled: true},
			},
		},
		{
			ID:          "healthcare",
			DisplayName: "Healthcare & Clinics",
			Capabilities: []CapabilityDescriptor{
				{ID: "appointments", Label: "Appointment Booking", DefaultEnabled: true},
				{ID: "services", Label: "Services & Treatments", DefaultEnabled: true},
				{ID: "billing", Label: "Billing & Insurance", DefaultEnabled: true},
				{ID: "inquiries", Label: "Patient Inquiries", DefaultEnabled: true},
				{ID: "reminders", Label: "Visit Reminders", DefaultEnabled: false},
			},
		},
		{
			ID:          "realestate",
			DisplayName: "Real Estate",
			Capabilities: []CapabilityDescriptor{
				{ID: "viewings", Label: "Property Viewings", DefaultEnabled: true},
				{ID: "catalog", Label: "Property Listings", DefaultEnabled: true},
				{ID: "inquiries", Label: "Buyer Inquiries", DefaultEnabled: true},
				{ID: "fees", Label: "Fees & Commissions", DefaultEnabled: false},
				{ID: "mortgage", Label: "Mortgage Guidance", DefaultEnabled: false},
			},
		},
		{
			ID:          "ecommerce",
			DisplayName: "E-commerce & Retail",
			Capabilities: []CapabilityDescriptor{
				{ID: "catalog", Label: "Product Catalog", DefaultEnabled: true},
				{ID: "orders", Label: "Order Placement", DefaultEnabled: true},
				{ID: "tracking", Label: "Order Tracking", DefaultEnabled: true},
				{ID: "payments", Label: "Payments & Refunds", DefaultEnabled: true},
				{ID: "support", Label: "Customer Support", DefaultEnabled: true},
				{ID: "offers", Label: "Promotions & Deals", DefaultEnabled: false},
			},
		},
		{
			ID:          "education",
			DisplayName: "Education & Training",
			Capabilities: []CapabilityDescriptor{
				{ID: "appointments", Label: "Class Scheduling", DefaultEnabled: true},
				{ID: "services", Label: "Courses & Programs", DefaultEnabled: true},
				{ID: "fees", Label: "Tuition & Fees", DefaultEnabled: true},
				{ID: "inquiries", Label: "Admissions Inquiries", DefaultEnabled: true},
			},
		},
		{
			ID:          "beauty",
			DisplayName: "Beauty & Wellness",
			Capabilities: []CapabilityDescriptor{
				{ID: "appointments", Label: "Appointment Booking", DefaultEnabled: true},
				{ID: "services", Label: "Services & Pricing", DefaultEnabled: true},
				{ID: "offers", Label: "Packages & Offers", DefaultEnabled: false},
				{ID: "support", Label: "Client Support", DefaultEnabled: true},
			},
		},
		{
			ID:          "fitness",
			DisplayName: "Fitness & Sports",
			Capabilities: []CapabilityDescriptor{
				{ID: "appointments", Label: "Session Booking", DefaultEnabled: true},
				{ID: "services", Label: "Classes & Memberships", DefaultEnabled: true},
				{ID: "fees", Label: "Membership Fees", DefaultEnabled: true},
				{ID: "support", Label: "Member Support", DefaultEnabled: false},
			},
		},
		{
			ID:          "legal",
			DisplayName: "Legal Services",
			Capabilities: []CapabilityDescriptor{
				{ID: "appointments", Label: "Consultation Booking", DefaultEnabled: true},
				{ID: "services", Label: "Practice Areas", DefaultEnabled: true},
				{ID: "fees", Label: "Fees & Retainers", DefaultEnabled: true},
				{ID: "inquiries", Label: "Case Inquiries", DefaultEnabled: true},
			},
		},
		{
			ID:          "automotive",
			DisplayName: "Automotive Services",
			Capabilities: []CapabilityDescriptor{
				{ID: "appointments", Label: "Service Booking", DefaultEnabled: true},
				{ID: "services", Label: "Repairs & Maintenance", DefaultEnabled: true},
				{ID: "tracking", Label: "Job Status Tracking", DefaultEnabled: false},
				{ID: "billing", Label: "Estimates & Billing", DefaultEnabled: true},
			},
		},
		{
			ID:          "hospitality",
			DisplayName: "Hotels & Hospitality",
			Capabilities: []CapabilityDescriptor{
				{ID: "reservations", Label: "Room Reservations", DefaultEnabled: true},
				{ID: "services", Label: "Amenities & Services", DefaultEnabled: true},
				{ID: "billing", Label: "Billing & Invoices", DefaultEnabled: false},
				{ID: "support", Label: "Guest Support", DefaultEnabled: true},
			},
		},
	}
}
