package acl

// Registry maps ACL tag names to the descriptions shown in the admin UI.
// Tags are opaque strings; this list only drives discovery, enforcement
// accepts whatever tags the config and user records carry.
var Registry = map[string]string{
	"superuser":    "Unrestricted access to every tool",
	"sales_funnel": "Lead pipeline and sales funnel reporting",
	"sales_admin":  "Sales funnel administration and exports",
	"reservations": "Villa availability, bookings and stay management",
	"finance":      "Invoicing, payouts and revenue reporting",
	"operations":   "Housekeeping, maintenance and on-ground operations",
	"homeowner":    "Homeowner statements and property performance",
	"people":       "Staff directory and HR lookups",
}

// AvailableACLs returns a copy of the registry.
func AvailableACLs() map[string]string {
	out := make(map[string]string, len(Registry))
	for k, v := range Registry {
		out[k] = v
	}
	return out
}
