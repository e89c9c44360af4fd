// Package naming derives C++ constant names from catalog keys.
//
// Keys are upper-case words joined by underscores. The name is a fixed
// marker followed by the words in camel case:
//
//	MAIN_MENU_TITLE -> sMainMenuTitle   (default options)
//	MAIN_MENU_TITLE -> s_mainMenuTitle  (Marker "s_", CapitalizeFirst false)
//
// Assign derives the names of a whole catalog at once and refuses keys whose
// names would be invalid or would collide.
package naming
