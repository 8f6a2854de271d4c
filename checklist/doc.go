// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package checklist manages the persisted packing list.

# Persistence Port

All reads and writes go through the Port interface. The production SQLPort
stores the list as a JSON blob in the storage key-value table under
"trip-checklist-items"; a second key, "trip-checklist-checked", is a legacy
checked-state map consulted once at load when the primary key is absent.
MemoryPort is the in-memory fake for tests.

# Load Resolution

NewStore resolves the stored shape exactly once:

  - current format present → used as-is
  - only the legacy map present → merged onto the defaults, then persisted
    immediately so the current key exists from first load
  - neither present → defaults verbatim

# Operations

Toggle, Add, Delete, ResetChecks and FullReset follow the behavior of the
original list: Add trims the label and silently rejects blanks, assigning
id = max + 1; Delete itself ignores the custom flag (the HTTP layer restricts
deletion to custom items); FullReset removes both storage keys and restores
the default list. Every mutation persists the complete list, last writer
wins.
*/
package checklist
