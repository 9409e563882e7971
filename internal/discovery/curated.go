package discovery

import (
	"context"
	"sort"

	"uismith/internal/symbol"
)

// curatedEntry is one component in the static table.
type curatedEntry struct {
	name        string
	description string
	props       []string
}

// curatedPackages is the fixed fallback table covering popular design
// systems. It is deliberately incomplete: it exists so production
// environments without node_modules can still validate against a sound
// (if smaller) authoritative set.
var curatedPackages = map[string][]curatedEntry{
	"@shopify/polaris": {
		{"Page", "Top-level page wrapper with title and actions", []string{"title", "primaryAction", "backAction"}},
		{"Layout", "Responsive page layout sections", nil},
		{"Card", "Content container with consistent padding", []string{"padding", "background"}},
		{"BlockStack", "Vertical stack with managed spacing", []string{"gap", "align"}},
		{"InlineStack", "Horizontal stack with managed spacing", []string{"gap", "align", "wrap"}},
		{"InlineGrid", "Inline CSS grid", []string{"columns", "gap"}},
		{"Box", "Primitive layout box", []string{"padding", "background", "borderRadius"}},
		{"Divider", "Horizontal rule", nil},
		{"Button", "Primary interactive control", []string{"variant", "tone", "onClick", "disabled"}},
		{"ButtonGroup", "Groups related buttons", nil},
		{"TextField", "Single-line or multiline text input", []string{"label", "value", "onChange", "error"}},
		{"Select", "Dropdown selection input", []string{"label", "options", "value", "onChange"}},
		{"Checkbox", "Boolean input", []string{"label", "checked", "onChange"}},
		{"RadioButton", "Mutually exclusive choice", []string{"label", "checked", "onChange"}},
		{"Text", "Typography primitive", []string{"variant", "as", "tone"}},
		{"Badge", "Status descriptor", []string{"tone", "progress"}},
		{"Banner", "Prominent inline message", []string{"title", "tone", "onDismiss"}},
		{"Toast", "Ephemeral confirmation message", []string{"content", "onDismiss"}},
		{"Spinner", "Loading indicator", []string{"size"}},
		{"Modal", "Overlay dialog", []string{"open", "title", "onClose"}},
		{"Tooltip", "Hover hint", []string{"content"}},
		{"DataTable", "Tabular data display", []string{"columnContentTypes", "headings", "rows"}},
		{"IndexTable", "Resource list table", []string{"headings", "itemCount"}},
		{"ResourceList", "List of resource items", []string{"items", "renderItem"}},
		{"Avatar", "Entity image placeholder", []string{"customer", "size"}},
		{"Thumbnail", "Small preview image", []string{"source", "alt"}},
		{"Icon", "System icon", []string{"source", "tone"}},
		{"Tag", "Removable label", []string{"onRemove"}},
		{"Tabs", "Horizontal navigation tabs", []string{"tabs", "selected", "onSelect"}},
		{"Navigation", "App sidebar navigation", nil},
		{"Pagination", "Previous/next controls", []string{"hasNext", "hasPrevious"}},
		{"EmptyState", "Zero-data placeholder", []string{"heading", "action", "image"}},
		{"SkeletonBodyText", "Loading placeholder lines", []string{"lines"}},
		{"LegacyStack", "Deprecated stack layout", []string{"spacing", "vertical"}},
	},
	"@mui/material": {
		{"Box", "Generic layout container", []string{"sx", "component"}},
		{"Stack", "One-dimensional flex layout", []string{"direction", "spacing"}},
		{"Grid", "Responsive grid layout", []string{"container", "item", "spacing"}},
		{"Container", "Centers content horizontally", []string{"maxWidth"}},
		{"Paper", "Elevated surface", []string{"elevation"}},
		{"Card", "Surface for grouped content", nil},
		{"CardContent", "Card body region", nil},
		{"CardActions", "Card action row", nil},
		{"Button", "Material button", []string{"variant", "color", "onClick"}},
		{"IconButton", "Icon-only button", []string{"color", "onClick"}},
		{"TextField", "Material text input", []string{"label", "value", "onChange", "error"}},
		{"Select", "Dropdown input", []string{"value", "onChange"}},
		{"Checkbox", "Boolean input", []string{"checked", "onChange"}},
		{"Switch", "Toggle input", []string{"checked", "onChange"}},
		{"Typography", "Text primitive", []string{"variant", "component"}},
		{"Alert", "Inline severity message", []string{"severity", "onClose"}},
		{"Snackbar", "Ephemeral message", []string{"open", "onClose"}},
		{"CircularProgress", "Loading spinner", []string{"size"}},
		{"Dialog", "Modal dialog", []string{"open", "onClose"}},
		{"Tooltip", "Hover hint", []string{"title"}},
		{"Table", "Data table", nil},
		{"Avatar", "Entity image", []string{"src", "alt"}},
		{"Chip", "Compact element", []string{"label", "onDelete"}},
		{"Tabs", "Tab navigation", []string{"value", "onChange"}},
		{"Tab", "Single tab", []string{"label"}},
		{"AppBar", "Top application bar", []string{"position"}},
		{"Drawer", "Side navigation panel", []string{"open", "anchor"}},
		{"List", "Vertical list", nil},
		{"ListItem", "Single list row", nil},
		{"Divider", "Separator line", nil},
	},
	"antd": {
		{"Layout", "Page-level layout", nil},
		{"Row", "Grid row", []string{"gutter"}},
		{"Col", "Grid column", []string{"span"}},
		{"Space", "Spacing container", []string{"size", "direction"}},
		{"Divider", "Separator", nil},
		{"Button", "Button control", []string{"type", "onClick"}},
		{"Input", "Text input", []string{"value", "onChange"}},
		{"Select", "Dropdown input", []string{"options", "onChange"}},
		{"Checkbox", "Boolean input", []string{"checked", "onChange"}},
		{"Form", "Form with validation", []string{"onFinish"}},
		{"Typography", "Text primitive", nil},
		{"Card", "Content card", []string{"title"}},
		{"Table", "Data table", []string{"columns", "dataSource"}},
		{"Alert", "Inline message", []string{"type", "message"}},
		{"Modal", "Dialog", []string{"open", "onOk", "onCancel"}},
		{"Spin", "Loading indicator", nil},
		{"Menu", "Navigation menu", []string{"items", "mode"}},
		{"Tabs", "Tab navigation", []string{"items"}},
		{"Badge", "Status badge", []string{"count"}},
		{"Avatar", "Entity image", []string{"src"}},
		{"Tag", "Label tag", []string{"color"}},
		{"Pagination", "Paging controls", []string{"total", "onChange"}},
	},
	"@chakra-ui/react": {
		{"Box", "Layout primitive", nil},
		{"Flex", "Flexbox container", []string{"direction", "gap"}},
		{"Stack", "Spaced stack", []string{"spacing", "direction"}},
		{"HStack", "Horizontal stack", []string{"spacing"}},
		{"VStack", "Vertical stack", []string{"spacing"}},
		{"Grid", "CSS grid", []string{"templateColumns", "gap"}},
		{"Container", "Centered container", []string{"maxW"}},
		{"Button", "Button control", []string{"colorScheme", "onClick"}},
		{"Input", "Text input", []string{"value", "onChange"}},
		{"Select", "Dropdown", []string{"value", "onChange"}},
		{"Checkbox", "Boolean input", []string{"isChecked", "onChange"}},
		{"Text", "Text primitive", []string{"fontSize"}},
		{"Heading", "Heading text", []string{"size"}},
		{"Card", "Content card", nil},
		{"Alert", "Inline message", []string{"status"}},
		{"Spinner", "Loading indicator", []string{"size"}},
		{"Modal", "Dialog overlay", []string{"isOpen", "onClose"}},
		{"Tooltip", "Hover hint", []string{"label"}},
		{"Badge", "Status badge", []string{"colorScheme"}},
		{"Avatar", "Entity image", []string{"name", "src"}},
		{"Tabs", "Tab navigation", nil},
		{"Divider", "Separator", nil},
	},
	"react-bootstrap": {
		{"Container", "Grid container", []string{"fluid"}},
		{"Row", "Grid row", nil},
		{"Col", "Grid column", []string{"xs", "md", "lg"}},
		{"Stack", "Spaced stack", []string{"gap", "direction"}},
		{"Button", "Button control", []string{"variant", "onClick"}},
		{"Form", "Form wrapper", []string{"onSubmit"}},
		{"Card", "Content card", nil},
		{"Alert", "Inline message", []string{"variant"}},
		{"Spinner", "Loading indicator", []string{"animation"}},
		{"Modal", "Dialog", []string{"show", "onHide"}},
		{"Table", "Data table", []string{"striped", "bordered"}},
		{"Badge", "Status badge", []string{"bg"}},
		{"Nav", "Navigation", nil},
		{"Navbar", "Top navigation bar", nil},
		{"Tabs", "Tab navigation", []string{"activeKey", "onSelect"}},
		{"Pagination", "Paging controls", nil},
	},
}

// CuratedEnumerator serves the static table. It implements
// ExportEnumerator and reports ok=false for packages it does not know.
type CuratedEnumerator struct{}

// Enumerate implements ExportEnumerator.
func (e *CuratedEnumerator) Enumerate(_ context.Context, pkg string) ([]symbol.Record, bool) {
	entries, ok := curatedPackages[pkg]
	if !ok {
		return nil, false
	}
	records := make([]symbol.Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, symbol.Record{
			Name:        entry.name,
			Category:    symbol.Categorize(entry.name),
			Props:       entry.props,
			SourceKind:  symbol.SourcePackage,
			SourcePath:  pkg,
			Description: entry.description,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, true
}

// CuratedPackageNames lists the packages the static table covers.
func CuratedPackageNames() []string {
	names := make([]string, 0, len(curatedPackages))
	for name := range curatedPackages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
