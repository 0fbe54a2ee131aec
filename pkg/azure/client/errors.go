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

package client

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// IsResourceGroupNotFoundErr is used to determine if we are failing to find a resource group within azure.
func IsResourceGroupNotFoundErr(err error) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.ErrorCode == "ResourceGroupNotFound"
}

// IsNotFoundErr matches any 404 returned by ARM.
func IsNotFoundErr(err error) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.StatusCode == http.StatusNotFound
}

// IsRoleAssignmentExistsErr matches the conflict ARM returns for a duplicate role assignment.
func IsRoleAssignmentExistsErr(err error) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.ErrorCode == "RoleAssignmentExists"
}

// IsAuthorizationFailedErr matches 403s caused by missing permissions on the caller.
func IsAuthorizationFailedErr(err error) bool {
	var azErr *azcore.ResponseError
	if !errors.As(err, &azErr) {
		return false
	}
	return azErr.StatusCode == http.StatusForbidden || azErr.ErrorCode == "AuthorizationFailed"
}
