package coverage

import (
	"strings"

	"github.com/fwojciec/doccover"
)

// OtherArea collects uncovered items no remediation area claims.
const OtherArea = "other"

// DefaultRemediation is evaluated top to bottom; an item joins the first
// area with a trigger found in its lowercased title.
var DefaultRemediation = []doccover.RemediationArea{
	{Name: "devtools & debugging", Triggers: []string{"devtools", "debug", "调试", "coredump"}},
	{Name: "cross-platform", Triggers: []string{"rn", "react native", "小程序", "taro", "flutter", "跨端"}},
	{Name: "monitoring", Triggers: []string{"监控", "monitor", "pm2"}},
	{Name: "engineering", Triggers: []string{"webpack", "babel", "工程", "构建"}},
}

// Remediation groups items into areas. Groups follow the area order with
// OtherArea last, keep item order, and empty groups are omitted.
func Remediation(areas []doccover.RemediationArea, items []*doccover.Item) []doccover.RemediationGroup {
	byArea := make(map[string][]*doccover.Item)
	for _, item := range items {
		name := areaFor(areas, item.Title)
		byArea[name] = append(byArea[name], item)
	}

	var groups []doccover.RemediationGroup
	seen := make(map[string]bool)
	for _, a := range areas {
		if seen[a.Name] || len(byArea[a.Name]) == 0 {
			continue
		}
		seen[a.Name] = true
		groups = append(groups, doccover.RemediationGroup{Area: a.Name, Items: byArea[a.Name]})
	}
	if other := byArea[OtherArea]; len(other) > 0 && !seen[OtherArea] {
		groups = append(groups, doccover.RemediationGroup{Area: OtherArea, Items: other})
	}
	return groups
}

func areaFor(areas []doccover.RemediationArea, title string) string {
	lower := strings.ToLower(title)
	for _, a := range areas {
		for _, t := range a.Triggers {
			if strings.Contains(lower, strings.ToLower(t)) {
				return a.Name
			}
		}
	}
	return OtherArea
}
