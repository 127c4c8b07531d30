// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"math"
	"time"
)

// defaultExpiringWindowDays is how close to expiry a domain must be
// before it is classified as expiring.
const defaultExpiringWindowDays = 30

// classify decides the lifecycle state for a resolved domain.
//
// The decision table, evaluated in order:
//
//  1. Unregistered flag set → unregistered.
//  2. Expiry known → by day difference: past or today → expired,
//     within the expiring window → expiring, otherwise → normal.
//  3. No expiry, no registrar, and no status lines → failed; the
//     payload was likely unparseable. Name servers alone do not count
//     as registration data here.
//  4. Otherwise → normal: partial data is treated optimistically.
func classify(expiresAt *time.Time, unregistered, hasRegistrationData bool, now time.Time, windowDays int) LifecycleState {
	if unregistered {
		return StateUnregistered
	}

	if expiresAt != nil {
		diffDays := int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
		switch {
		case diffDays > windowDays:
			return StateNormal
		case diffDays > 0:
			return StateExpiring
		default:
			return StateExpired
		}
	}

	if !hasRegistrationData {
		return StateFailed
	}

	return StateNormal
}
