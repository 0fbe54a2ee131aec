// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package monitoring

import (
	"strings"
)

// Cloud names as reported by the selected cloud configuration. usnat and ussec
// are air-gapped clouds; their tables are kept for completeness.
const (
	cloudPublic     = "azurecloud"
	cloudChina      = "azurechinacloud"
	cloudGovernment = "azureusgovernment"
	cloudUSNat      = "usnat"
	cloudUSSec      = "ussec"
)

type regionTable struct {
	// cluster region to log analytics region
	regions map[string]string
	// log analytics region to short code
	codes         map[string]string
	defaultRegion string
	defaultCode   string
}

// Log analytics workspaces cannot be created in westcentralus, so it is mapped to eastus.
var publicRegions = regionTable{
	regions: map[string]string{
		"australiacentral":   "australiacentral",
		"australiacentral2":  "australiacentral",
		"australiaeast":      "australiaeast",
		"australiasoutheast": "australiasoutheast",
		"brazilsouth":        "brazilsouth",
		"brazilsoutheast":    "brazilsoutheast",
		"canadacentral":      "canadacentral",
		"canadaeast":         "canadacentral",
		"centralus":          "centralus",
		"centralindia":       "centralindia",
		"eastasia":           "eastasia",
		"eastus":             "eastus",
		"eastus2":            "eastus2",
		"eastus2euap":        "eastus2euap",
		"francecentral":      "francecentral",
		"francesouth":        "francecentral",
		"germanynorth":       "germanywestcentral",
		"germanywestcentral": "germanywestcentral",
		"japaneast":          "japaneast",
		"japanwest":          "japaneast",
		"koreacentral":       "koreacentral",
		"koreasouth":         "koreacentral",
		"northcentralus":     "northcentralus",
		"northeurope":        "northeurope",
		"norwayeast":         "norwayeast",
		"norwaywest":         "norwayeast",
		"southafricanorth":   "southafricanorth",
		"southafricawest":    "southafricanorth",
		"southcentralus":     "southcentralus",
		"southeastasia":      "southeastasia",
		"southindia":         "centralindia",
		"switzerlandnorth":   "switzerlandnorth",
		"switzerlandwest":    "switzerlandwest",
		"uaecentral":         "uaecentral",
		"uaenorth":           "uaenorth",
		"uksouth":            "uksouth",
		"ukwest":             "ukwest",
		"westcentralus":      "eastus",
		"westeurope":         "westeurope",
		"westindia":          "centralindia",
		"westus":             "westus",
		"westus2":            "westus2",
	},
	codes: map[string]string{
		"australiacentral":   "CAU",
		"australiaeast":      "EAU",
		"australiasoutheast": "ASE",
		"brazilsouth":        "CQ",
		"brazilsoutheast":    "BRSE",
		"canadacentral":      "CCA",
		"centralindia":       "CIN",
		"centralus":          "CUS",
		"eastasia":           "EA",
		"eastus":             "EUS",
		"eastus2":            "EUS2",
		"eastus2euap":        "EAP",
		"francecentral":      "PAR",
		"germanywestcentral": "DEWC",
		"japaneast":          "EJP",
		"koreacentral":       "SE",
		"northcentralus":     "NCUS",
		"northeurope":        "NEU",
		"norwayeast":         "NOE",
		"southafricanorth":   "JNB",
		"southcentralus":     "SCUS",
		"southeastasia":      "SEA",
		"switzerlandnorth":   "CHN",
		"switzerlandwest":    "CHW",
		"uaecentral":         "AUH",
		"uaenorth":           "DXB",
		"uksouth":            "SUK",
		"ukwest":             "WUK",
		"usgovvirginia":      "USGV",
		"westcentralus":      "EUS",
		"westeurope":         "WEU",
		"westus":             "WUS",
		"westus2":            "WUS2",
	},
	defaultRegion: "eastus",
	defaultCode:   "EUS",
}

// Log analytics is only offered in chinaeast2.
var chinaRegions = regionTable{
	regions: map[string]string{
		"chinaeast":   "chinaeast2",
		"chinaeast2":  "chinaeast2",
		"chinanorth":  "chinaeast2",
		"chinanorth2": "chinaeast2",
	},
	codes: map[string]string{
		"chinaeast":   "EAST2",
		"chinaeast2":  "EAST2",
		"chinanorth":  "EAST2",
		"chinanorth2": "EAST2",
	},
	defaultRegion: "chinaeast2",
	defaultCode:   "EAST2",
}

var governmentRegions = regionTable{
	regions: map[string]string{
		"usgovvirginia": "usgovvirginia",
		"usgovtexas":    "usgovvirginia",
		"usgovarizona":  "usgovarizona",
	},
	codes: map[string]string{
		"usgovvirginia": "USGV",
		"usgovarizona":  "PHX",
	},
	defaultRegion: "usgovvirginia",
	defaultCode:   "USGV",
}

var usNatRegions = regionTable{
	regions: map[string]string{
		"usnateast": "usnateast",
		"usnatwest": "usnatwest",
	},
	codes: map[string]string{
		"usnateast": "EXE",
		"usnatwest": "EXW",
	},
	defaultRegion: "usnateast",
	defaultCode:   "EXE",
}

var usSecRegions = regionTable{
	regions: map[string]string{
		"usseceast": "usseceast",
		"ussecwest": "ussecwest",
	},
	codes: map[string]string{
		"usseceast": "RLTR",
		"ussecwest": "RLTR",
	},
	defaultRegion: "usseceast",
	defaultCode:   "RLTR",
}

var regionTables = map[string]regionTable{
	cloudPublic:     publicRegions,
	cloudChina:      chinaRegions,
	cloudGovernment: governmentRegions,
	cloudUSNat:      usNatRegions,
	cloudUSSec:      usSecRegions,
}

// WorkspaceRegion returns the log analytics region and its short code for a
// cluster in location. ok is false when the cloud has no monitoring support.
func WorkspaceRegion(cloudName, location string) (region, code string, ok bool) {
	table, ok := regionTables[strings.ToLower(cloudName)]
	if !ok {
		return "", "", false
	}
	region, found := table.regions[strings.ToLower(location)]
	if !found {
		region = table.defaultRegion
	}
	code, found = table.codes[region]
	if !found {
		code = table.defaultCode
	}
	return region, code, true
}
