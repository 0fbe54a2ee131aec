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

package base

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

// optionalInt32 is a pflag.Value that leaves the Optional unset until the flag is parsed.
type optionalInt32 struct {
	target *models.Optional[int32]
}

func (o *optionalInt32) String() string {
	if v, ok := o.target.Get(); ok {
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

func (o *optionalInt32) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("%q is not a valid integer", s)
	}
	*o.target = models.Some(int32(v))
	return nil
}

func (o *optionalInt32) Type() string { return "int32" }

type optionalString struct {
	target *models.Optional[string]
}

func (o *optionalString) String() string { return o.target.OrElse("") }

func (o *optionalString) Set(s string) error {
	*o.target = models.Some(s)
	return nil
}

func (o *optionalString) Type() string { return "string" }

// OptionalInt32Var binds a flag whose zero value differs from "not given".
func OptionalInt32Var(cmd *cobra.Command, p *models.Optional[int32], name, usage string) {
	cmd.Flags().Var(&optionalInt32{target: p}, name, usage)
}

// OptionalStringVar binds a string flag where an empty value is meaningful.
func OptionalStringVar(cmd *cobra.Command, p *models.Optional[string], name, usage string) {
	cmd.Flags().Var(&optionalString{target: p}, name, usage)
}

// ResourceFlags binds the --resource-group and --name flags and marks them required.
func ResourceFlags(cmd *cobra.Command, resourceGroup, name *string, what string) error {
	cmd.Flags().StringVarP(resourceGroup, "resource-group", "g", "", "Name of resource group")
	cmd.Flags().StringVarP(name, "name", "n", "", fmt.Sprintf("Name of the %s", what))
	for _, flag := range []string{"resource-group", "name"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", flag, err)
		}
	}
	return nil
}

// BindAddonFlags binds the flags that configure individual addons.
func BindAddonFlags(r *models.RawParameters, cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&r.WorkspaceResourceID, "workspace-resource-id", "", "Resource ID of an existing Log Analytics workspace for the monitoring addon")
	f.BoolVar(&r.EnableMSIAuthForMonitoring, "enable-msi-auth-for-monitoring", false, "Send monitoring data with managed identity authentication")
	f.BoolVar(&r.EnableSyslog, "enable-syslog", false, "Enable syslog collection for the monitoring addon")
	f.StringVar(&r.DataCollectionSettings, "data-collection-settings", "", "Path to a JSON file with the monitoring data collection settings")
	f.BoolVar(&r.EnableHighLogScaleMode, "enable-high-log-scale-mode", false, "Enable high log scale mode for container logs")
	f.StringVar(&r.AMPLSResourceID, "ampls-resource-id", "", "Resource ID of an Azure Monitor private link scope")
	f.StringVar(&r.ACISubnetName, "aci-subnet-name", "", "Name of a subnet in an existing VNet for the virtual node addon")
	f.StringVar(&r.AppGWName, "appgw-name", "", "Name of the application gateway to create or use")
	f.StringVar(&r.AppGWSubnetCIDR, "appgw-subnet-cidr", "", "Subnet CIDR for a new application gateway subnet")
	f.StringVar(&r.AppGWID, "appgw-id", "", "Resource ID of an existing application gateway")
	f.StringVar(&r.AppGWSubnetID, "appgw-subnet-id", "", "Resource ID of an existing subnet for the application gateway")
	f.StringVar(&r.AppGWWatchNamespace, "appgw-watch-namespace", "", "Comma separated namespaces the ingress controller watches")
	f.BoolVar(&r.EnableSGXQuoteHelper, "enable-sgxquotehelper", false, "Enable the SGX quote helper for confidential computing")
}
