// Command docval validates documentary trees against a coded naming scheme.
//
// Every folder below a root is named _<code>_<free text>, where the code
// extends the code of its parent folder by one lowercase letter, and every file
// is named <code>_<YYMMDD>_<free text>_<user code> with the code of the folder
// holding it. docval walks a tree, checks each name and reports violations as
// primary or secondary, the latter being consequences of a parent violation.
//
// Subcommands:
//   - check: Validate a tree and report violations
//   - rules: List the rule catalogue
//   - count: Count the folders and files a check would visit
//   - seed: Generate a compliant synthetic tree
package main
