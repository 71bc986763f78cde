package resolver

import (
	"github.com/radhian/reservation-reconciliation/split"
)

// PropertyEntry is a managed property as seen by the resolver.
type PropertyEntry struct {
	PropertyID      int64
	BillingConfigID int64
	Name            string
	Aliases         map[string][]string // platform -> free-text listing names
	Billing         split.Config
}

func (p PropertyEntry) hasAlias(platform, alias string) bool {
	for _, a := range p.Aliases[platform] {
		if a == alias {
			return true
		}
	}
	return false
}

// Catalog is an immutable snapshot of an account's properties. Every learned alias or
// provisioned property produces a new Catalog with a higher Version; the receiver is
// never modified.
type Catalog struct {
	AccountID  string
	Version    int
	Properties []PropertyEntry
}

func NewCatalog(accountID string, properties []PropertyEntry) Catalog {
	return Catalog{AccountID: accountID, Version: 1, Properties: properties}
}

func (c Catalog) Find(propertyID int64) (PropertyEntry, bool) {
	for _, p := range c.Properties {
		if p.PropertyID == propertyID {
			return p, true
		}
	}
	return PropertyEntry{}, false
}

func (c Catalog) Empty() bool {
	return len(c.Properties) == 0
}

func (c Catalog) withAlias(propertyID int64, platform, alias string) Catalog {
	props := make([]PropertyEntry, len(c.Properties))
	copy(props, c.Properties)
	for i, p := range props {
		if p.PropertyID != propertyID {
			continue
		}
		aliases := make(map[string][]string, len(p.Aliases)+1)
		for k, v := range p.Aliases {
			aliases[k] = append([]string(nil), v...)
		}
		aliases[platform] = append(aliases[platform], alias)
		props[i].Aliases = aliases
	}
	return Catalog{AccountID: c.AccountID, Version: c.Version + 1, Properties: props}
}

func (c Catalog) withProperty(p PropertyEntry) Catalog {
	props := make([]PropertyEntry, 0, len(c.Properties)+1)
	props = append(props, c.Properties...)
	props = append(props, p)
	return Catalog{AccountID: c.AccountID, Version: c.Version + 1, Properties: props}
}
