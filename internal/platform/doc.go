package platform

// Package platform provides OS-level helpers: filesystem preparation,
// output renaming, and revealing files in the system file manager.
