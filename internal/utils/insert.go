package querybuilder

type InsertRows [][]interface{} // multiple Rows

type UpdateData map[string]interface{}
