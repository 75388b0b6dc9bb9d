// Package exclusion hides selected pages from public page listings.
//
// A single stored Set holds ids of excluded pages. Filter drops those pages from a listing unless the listing is
// built for the admin interface, Toggle renders the edit-screen checkbox and updates the set when a page is saved.
// Register wires both into the site hooks.
package exclusion
