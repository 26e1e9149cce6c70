// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the storage contract shared by all backends.

# Interfaces

  - Ledger: the arrival-ordered vote log
  - SettingsStore: voting-open and judge-visibility toggles
  - Roster: the contestant list
  - Store: all of the above plus Reset

# Backends

Three interchangeable adapters implement Store:

  - memstore: in-process, ephemeral (demo mode)
  - filestore: local JSON file
  - sqlstore: sqlite local file or postgres server

The backend is chosen once at startup from configuration. Core packages
hold only the injected Store and never branch on its kind.

# Errors

Every operation may fail with ErrUnavailable when the backing store is
unreachable. Adapters wrap the underlying cause:

	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)

Lookups that can express absence through their return values (Find,
UpdateScore, the delete counts) do so instead of returning ErrNotFound.
*/
package store
