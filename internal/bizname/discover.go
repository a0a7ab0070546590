package bizname

import (
	"fmt"

	"github.com/mcaflow-dev/mcaflow/internal/model"
)

// unnamedAccount stands in for accounts exported without a name.
const unnamedAccount = "Unknown Account"

// AccountGroup aggregates the accounts in an export that share a raw
// account name.
type AccountGroup struct {
	Name       string
	Type       string
	Subtype    string
	Count      int
	AccountIDs []string
}

// DiscoverAccounts groups accounts by raw name in first-seen order
// and suggests a business name. It returns the cleaned name of the
// first distinct account as the default suggestion, the distinct raw
// names as alternative options, and the per-name detail. An empty
// account list yields a sentinel naming the source file.
func DiscoverAccounts(fileID string, accounts []model.Account) (string, []string, map[string]AccountGroup) {
	groups := make(map[string]AccountGroup)
	if len(accounts) == 0 {
		return fmt.Sprintf("%s (%s)", UnknownBusiness, fileID), nil, groups
	}

	var names []string
	for _, acct := range accounts {
		name := acct.Name
		if name == "" {
			name = unnamedAccount
		}
		g, seen := groups[name]
		if !seen {
			names = append(names, name)
			g = AccountGroup{Name: name, Type: acct.Type, Subtype: acct.Subtype}
		}
		g.Count++
		g.AccountIDs = append(g.AccountIDs, acct.AccountID)
		groups[name] = g
	}

	return Clean(names[0]), names, groups
}
