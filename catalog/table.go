package catalog

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

type classification struct {
	element ElementType
	display DisplayType
}

// htmlTags is the classification table for the standard HTML element set,
// following the WHATWG HTML living standard. This is data, not algorithm:
// each tag gets exactly one entry.
var htmlTags = map[string]classification{
	// document structure
	"html": {Container, Block},
	"head": {Container, Block},
	"body": {Container, Block},

	// document metadata
	"title": {EscapableRawText, Block},
	"base":  {Void, Block},
	"link":  {Void, Block},
	"meta":  {Void, Block},
	"style": {RawText, Block},

	// sectioning and headings
	"article": {Container, Block},
	"aside":   {Container, Block},
	"footer":  {Container, Block},
	"header":  {Container, Block},
	"hgroup":  {Container, Block},
	"main":    {Container, Block},
	"nav":     {Container, Block},
	"section": {Container, Block},
	"search":  {Container, Block},
	"address": {Container, Block},
	"h1":      {Container, Block},
	"h2":      {Container, Block},
	"h3":      {Container, Block},
	"h4":      {Container, Block},
	"h5":      {Container, Block},
	"h6":      {Container, Block},

	// grouping content
	"blockquote": {Container, Block},
	"dd":         {Container, Block},
	"details":    {Container, Block},
	"dialog":     {Container, Block},
	"div":        {Container, Block},
	"dl":         {Container, Block},
	"dt":         {Container, Block},
	"fieldset":   {Container, Block},
	"figcaption": {Container, Block},
	"figure":     {Container, Block},
	"form":       {Container, Block},
	"li":         {Container, Block},
	"menu":       {Container, Block},
	"ol":         {Container, Block},
	"p":          {Container, Block},
	"pre":        {Container, Block},
	"summary":    {Container, Block},
	"ul":         {Container, Block},
	"hr":         {Void, Block},

	// tables
	"table":    {Container, Block},
	"caption":  {Container, Block},
	"colgroup": {Container, Block},
	"col":      {Void, Block},
	"tbody":    {Container, Block},
	"td":       {Container, Block},
	"tfoot":    {Container, Block},
	"th":       {Container, Block},
	"thead":    {Container, Block},
	"tr":       {Container, Block},

	// text-level semantics
	"a":      {Container, Inline},
	"abbr":   {Container, Inline},
	"b":      {Container, Inline},
	"bdi":    {Container, Inline},
	"bdo":    {Container, Inline},
	"cite":   {Container, Inline},
	"code":   {Container, Inline},
	"data":   {Container, Inline},
	"dfn":    {Container, Inline},
	"em":     {Container, Inline},
	"i":      {Container, Inline},
	"kbd":    {Container, Inline},
	"mark":   {Container, Inline},
	"q":      {Container, Inline},
	"rp":     {Container, Inline},
	"rt":     {Container, Inline},
	"ruby":   {Container, Inline},
	"s":      {Container, Inline},
	"samp":   {Container, Inline},
	"small":  {Container, Inline},
	"span":   {Container, Inline},
	"strong": {Container, Inline},
	"sub":    {Container, Inline},
	"sup":    {Container, Inline},
	"time":   {Container, Inline},
	"u":      {Container, Inline},
	"var":    {Container, Inline},
	"br":     {Void, Inline},
	"wbr":    {Void, Inline},

	// edits
	"del": {Container, Inline},
	"ins": {Container, Inline},

	// embedded content
	"picture": {Container, Inline},
	"source":  {Void, Block},
	"img":     {Void, InlineBlock},
	"iframe":  {Container, InlineBlock},
	"embed":   {Void, InlineBlock},
	"object":  {Container, InlineBlock},
	"video":   {Container, InlineBlock},
	"audio":   {Container, Inline},
	"track":   {Void, Block},
	"map":     {Container, Inline},
	"area":    {Void, Inline},
	"canvas":  {Container, InlineBlock},

	// forms
	"button":   {Container, InlineBlock},
	"datalist": {Container, Inline},
	"input":    {Void, InlineBlock},
	"label":    {Container, Inline},
	"legend":   {Container, Block},
	"meter":    {Container, InlineBlock},
	"optgroup": {Container, Block},
	"option":   {Container, Block},
	"output":   {Container, Inline},
	"progress": {Container, InlineBlock},
	"select":   {Container, InlineBlock},
	"textarea": {EscapableRawText, InlineBlock},

	// scripting
	"script":   {RawText, Block},
	"noscript": {Container, Inline},
	"template": {Container, Block},
	"slot":     {Container, Inline},
}
